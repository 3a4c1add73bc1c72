// cmd/rover/main.go
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	scenarioPath string
	verbose      bool
)

func main() {
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Printf("rover: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rover",
		Short:         "Rover wheel-steering autopilot simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&scenarioPath, "scenario", "s", "scenarios/demo.toml", "scenario file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log simulation events")

	root.AddCommand(newRunCmd(), newViewCmd())
	return root
}

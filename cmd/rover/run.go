// cmd/rover/run.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"go-rover-autopilot/internal/app"
	"go-rover-autopilot/internal/config"
	"go-rover-autopilot/internal/defs"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		ticks int
		dt    float64
		every int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario headless and print telemetry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks <= 0 {
				return fmt.Errorf("--ticks must be positive, got %d", ticks)
			}
			if dt <= 0 {
				return fmt.Errorf("--dt must be positive, got %g", dt)
			}

			sim, err := loadSim()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := 0; i < ticks; i++ {
				sim.Step(dt)
				if every > 0 && (i+1)%every == 0 {
					if err := sim.WriteTelemetry(out); err != nil {
						return err
					}
				}
			}
			sim.Shutdown()
			return sim.WriteTelemetry(out)
		},
	}

	cmd.Flags().IntVarP(&ticks, "ticks", "n", 30*config.TickRate, "number of ticks to simulate")
	cmd.Flags().Float64Var(&dt, "dt", 1.0/config.TickRate, "tick length in seconds")
	cmd.Flags().IntVar(&every, "every", 0, "print telemetry every N ticks (0: only at the end)")
	return cmd
}

func loadSim() (*app.Sim, error) {
	sc, err := defs.LoadScenario(scenarioPath)
	if err != nil {
		return nil, err
	}

	var w io.Writer = io.Discard
	if verbose {
		w = os.Stderr
	}
	return app.NewSim(sc, log.New(w, "[sim] ", 0))
}

// cmd/rover/view.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-rover-autopilot/internal/config"
	"go-rover-autopilot/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func newViewCmd() *cobra.Command {
	var pprofAddr string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the scenario in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pprofAddr != "" {
				go func() {
					log.Println(http.ListenAndServe(pprofAddr, nil))
				}()
			}

			sim, err := loadSim()
			if err != nil {
				return err
			}
			defer sim.Shutdown()

			sm := state.NewStateMachine()
			sm.SetState(state.NewSimState(sm, sim))
			game := &AppGame{
				stateMachine:   sm,
				lastUpdateTime: time.Now(),
			}

			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			ebiten.SetWindowTitle("Rover autopilot: " + sim.Scenario.Name)
			return ebiten.RunGame(game)
		},
	}

	cmd.Flags().StringVar(&pprofAddr, "pprof", "", "serve pprof on this address, e.g. localhost:6060")
	return cmd
}

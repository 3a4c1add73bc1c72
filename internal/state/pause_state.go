// internal/state/pause_state.go
package state

import (
	"go-rover-autopilot/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the simulation and draws the previous state dimmed.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

// resumer is a state with an on-screen resume control.
type resumer interface {
	ResumeClicked(mx, my int) bool
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
		return
	}
	if r, ok := s.previousState.(resumer); ok && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if r.ResumeClicked(ebiten.CursorPosition()) {
			s.stateMachine.SetState(s.previousState)
		}
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PausedColor, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED", config.ScreenWidth/2-18, config.ScreenHeight/2)
}

func (s *PauseState) Exit() {}

// internal/state/sim_state.go
package state

import (
	"go-rover-autopilot/internal/app"
	"go-rover-autopilot/internal/config"
	"go-rover-autopilot/internal/types"
	"go-rover-autopilot/internal/ui"
	"go-rover-autopilot/internal/utils"
	"go-rover-autopilot/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	manualRate = 1.5 // input units per second while a key is held
	zoomFactor = 1.25
)

var speedMultipliers = []float64{1, 2, 4}

// DefaultPalette builds the renderer palette from config.
func DefaultPalette() render.Palette {
	return render.Palette{
		Background: config.BackgroundColor,
		Grid:       config.GridColor,
		Rover:      config.RoverColor,
		Autopilot:  config.AutopilotColor,
		Waypoint:   config.WaypointColor,
		Heading:    config.HeadingColor,
		Velocity:   config.VelocityColor,
		Text:       config.TextLightColor,
		Stroke:     config.StrokeWidth,
	}
}

// SimState runs the simulation and lets the user drive the selected rover.
// Manual steering is overridden while a program holds the wheel.
type SimState struct {
	sm       *StateMachine
	sim      *app.Sim
	renderer *render.RoverRenderer
	selected int

	pauseButton *ui.PauseButton
	speedButton *ui.SpeedButton
	indicator   *ui.AutopilotIndicator
}

var _ State = (*SimState)(nil)

func NewSimState(sm *StateMachine, sim *app.Sim) *SimState {
	return &SimState{
		sm:       sm,
		sim:      sim,
		renderer: render.NewRoverRenderer(sim.ECS, sim.Center, DefaultPalette()),
		pauseButton: ui.NewPauseButton(config.PauseButtonX, config.ButtonY, config.ButtonSize,
			config.HeadingColor, config.AutopilotColor),
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.ButtonY, config.ButtonSize, config.SpeedColors),
		indicator:   ui.NewAutopilotIndicator(config.IndicatorX, config.ButtonY, config.ButtonSize),
	}
}

func (s *SimState) Enter() {
	s.pauseButton.SetPaused(false)
}

func (s *SimState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		switch {
		case s.pauseButton.IsClicked(mx, my):
			s.pause()
			return
		case s.speedButton.IsClicked(mx, my):
			s.speedButton.ToggleState()
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.pause()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if n := len(s.sim.ECS.Rovers); n > 0 {
			s.selected = (s.selected + 1) % n
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		s.speedButton.ToggleState()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		s.renderer.Scale /= zoomFactor
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		s.renderer.Scale *= zoomFactor
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		s.renderer.ShowHUD = !s.renderer.ShowHUD
	}

	s.handleManualInput(deltaTime)
	s.sim.Step(deltaTime * speedMultipliers[s.speedButton.CurrentState%len(speedMultipliers)])

	if id, ok := s.selectedRover(); ok {
		s.indicator.Set(s.sim.ECS.Autopilots[id].WheelSteering.Enabled())
	}
}

func (s *SimState) pause() {
	s.pauseButton.TogglePause()
	s.sm.SetState(NewPauseState(s.sm, s))
}

// ResumeClicked reports whether a click at (mx, my) hits the pause button.
func (s *SimState) ResumeClicked(mx, my int) bool {
	return s.pauseButton.IsClicked(mx, my)
}

func (s *SimState) handleManualInput(deltaTime float64) {
	id, ok := s.selectedRover()
	if !ok {
		return
	}
	pilot := s.sim.ECS.Pilots[id]

	step := manualRate * deltaTime
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pilot.MainThrottle = utils.Clamp(pilot.MainThrottle+step, -1, 1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pilot.MainThrottle = utils.Clamp(pilot.MainThrottle-step, -1, 1)
	}

	// Positive steer turns left.
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		pilot.WheelSteer = utils.Clamp(pilot.WheelSteer+step, -1, 1)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		pilot.WheelSteer = utils.Clamp(pilot.WheelSteer-step, -1, 1)
	default:
		pilot.WheelSteer = 0
	}
}

func (s *SimState) selectedRover() (types.EntityID, bool) {
	ids := s.sim.ECS.RoverIDs()
	if len(ids) == 0 {
		return 0, false
	}
	return ids[s.selected%len(ids)], true
}

func (s *SimState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
	s.pauseButton.Draw(screen)
	s.speedButton.Draw(screen)
	s.indicator.Draw(screen, config.AutopilotColor, config.IdleColor)
}

// Exit leaves programs running; pausing keeps the sim.
func (s *SimState) Exit() {}

package component

import "go-rover-autopilot/internal/control"

// Pilot holds manual input and the command applied on the last tick.
type Pilot struct {
	MainThrottle  float64
	WheelThrottle float64
	WheelSteer    float64

	// Applied is what the autopilot pass produced for the physics step.
	Applied control.State
}

// Autopilot holds the control parameters a rover exposes to programs.
type Autopilot struct {
	WheelSteering *control.WheelSteering
	// Engaged is the wheel steering state seen by the last collection pass.
	Engaged   bool
	EngagedBy uint32
}

// Parameters lists every parameter of the rover.
func (a *Autopilot) Parameters() []control.Parameter {
	return []control.Parameter{a.WheelSteering}
}

// Package control holds the autopilot control parameters a vessel exposes to
// running programs, and the per-tick state they write into.
package control

// Vehicle is the read-only view of a vessel the control parameters need.
type Vehicle interface {
	// Heading is the compass heading of the vessel's nose, in degrees.
	Heading() float64
	// VelocityHeading is the compass heading of the surface velocity vector.
	VelocityHeading() float64
	// HorizontalSurfaceSpeed is in metres per second.
	HorizontalSurfaceSpeed() float64
	// MainThrottle is the raw manual throttle input.
	MainThrottle() float64
}

// Context is the execution unit that claims control authority, usually a
// running program bound to a processor part.
type Context interface {
	ControlPartID() uint32
	Vehicle() Vehicle
}

// State is the control record collected once per tick.
type State struct {
	WheelSteer    float64
	WheelThrottle float64
	MainThrottle  float64
}

// Parameter is implemented by every autopilot channel the host collects
// control input from.
type Parameter interface {
	ControlPartID() uint32
	Enabled() bool
	IsAutopilot() bool
	FightsWithSAS() bool

	Value() any
	CopyFrom(origin Parameter) error

	EnableControl(ctx Context)
	DisableControl()
	DisableControlFor(ctx Context)
	Shared() Context
	ResponsibleVehicle() Vehicle

	UpdateValue(value any, ctx Context) error
	UpdateAutopilot(s *State)
	SuppressAutopilot(s *State) bool
}

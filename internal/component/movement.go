// component/movement.go
package component

import "go-rover-autopilot/internal/geo"

// Position is the surface position of a rover.
type Position struct {
	geo.LatLng
}

// Motion is the rover's kinematic state. Speed is signed: negative when
// reversing.
type Motion struct {
	Heading         float64 // degrees, nose direction
	VelocityHeading float64 // degrees, direction of travel
	Speed           float64 // m/s
	MaxSpeed        float64
	TurnRate        float64 // deg/s at full steer
	Accel           float64
}

// HorizontalSpeed is the unsigned surface speed.
func (m *Motion) HorizontalSpeed() float64 {
	if m.Speed < 0 {
		return -m.Speed
	}
	return m.Speed
}

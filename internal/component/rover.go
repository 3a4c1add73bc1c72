package component

// Rover marks a drivable vessel.
type Rover struct {
	Name string
	// SlipJitter is the amplitude, in degrees, of random heading disturbance
	// per second while moving.
	SlipJitter float64
}

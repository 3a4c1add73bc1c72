// internal/event/types.go
package event

import "go-rover-autopilot/internal/types"

const (
	SteeringEngaged  EventType = "SteeringEngaged"  // a program took the wheel
	SteeringReleased EventType = "SteeringReleased" // wheel steering went back to manual
	WaypointReached  EventType = "WaypointReached"
	ProgramEnded     EventType = "ProgramEnded"
	ProgramError     EventType = "ProgramError"
)

// SteeringData is the payload of SteeringEngaged and SteeringReleased.
type SteeringData struct {
	Rover  types.EntityID
	PartID uint32
}

// WaypointData is the payload of WaypointReached.
type WaypointData struct {
	Rover    types.EntityID
	Waypoint types.EntityID
	Name     string
}

// ProgramData is the payload of ProgramEnded and ProgramError.
type ProgramData struct {
	Rover  types.EntityID
	PartID uint32
	Err    error
}

// internal/defs/scenario.go
package defs

// StepOp names a program instruction.
type StepOp string

const (
	StepLock     StepOp = "lock"
	StepUnlock   StepOp = "unlock"
	StepThrottle StepOp = "throttle"
	StepEnd      StepOp = "end"
)

// Scenario holds everything needed to start a simulation.
type Scenario struct {
	Name      string               `toml:"name"`
	Seed      int64                `toml:"seed"`
	Center    LatLngDef            `toml:"center"`
	Waypoints []WaypointDefinition `toml:"waypoint"`
	Rovers    []RoverDefinition    `toml:"rover"`
	Programs  []ProgramDefinition  `toml:"program"`
}

// LatLngDef is a surface position in degrees.
type LatLngDef struct {
	Lat float64 `toml:"lat"`
	Lng float64 `toml:"lng"`
}

// WaypointDefinition is a named surface marker.
type WaypointDefinition struct {
	Name string  `toml:"name"`
	Lat  float64 `toml:"lat"`
	Lng  float64 `toml:"lng"`
}

// RoverDefinition is the initial state of a rover. Zero physics values take
// the defaults from config.
type RoverDefinition struct {
	Name       string  `toml:"name"`
	Lat        float64 `toml:"lat"`
	Lng        float64 `toml:"lng"`
	Heading    float64 `toml:"heading"`
	Throttle   float64 `toml:"throttle"`
	Steer      float64 `toml:"steer"`
	MaxSpeed   float64 `toml:"max_speed"`
	TurnRate   float64 `toml:"turn_rate"`
	Accel      float64 `toml:"accel"`
	SlipJitter float64 `toml:"slip_jitter"`
}

// ProgramDefinition is a script run by a processor part on a rover.
type ProgramDefinition struct {
	Rover  string           `toml:"rover"`
	PartID uint32           `toml:"part_id"`
	Steps  []StepDefinition `toml:"step"`
}

// StepDefinition is one program instruction. A lock step takes exactly one
// of Heading, Waypoint, Vessel or Value; Value is passed through untyped.
type StepDefinition struct {
	At       float64  `toml:"at"`
	Op       StepOp   `toml:"op"`
	Heading  *float64 `toml:"heading,omitempty"`
	Waypoint string   `toml:"waypoint,omitempty"`
	Vessel   string   `toml:"vessel,omitempty"`
	Value    any      `toml:"value,omitempty"`
	Throttle float64  `toml:"throttle,omitempty"`
}

package component

import "image/color"

// Renderable describes how the viewer draws an entity.
type Renderable struct {
	Color  color.RGBA
	Radius float32
	Label  string
}

// Waypoint is a named surface marker rovers can steer to.
type Waypoint struct {
	Name    string
	Reached bool
}

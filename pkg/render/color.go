// pkg/render/color.go
package render

import "image/color"

// Palette holds the colors the rover renderer draws with.
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Rover      color.RGBA
	Autopilot  color.RGBA
	Waypoint   color.RGBA
	Heading    color.RGBA
	Velocity   color.RGBA
	Text       color.RGBA
	Stroke     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

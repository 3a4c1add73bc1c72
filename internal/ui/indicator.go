// internal/ui/indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AutopilotIndicator is a lamp showing whether the selected rover's wheel is
// held by a program. It pulses when the state flips.
type AutopilotIndicator struct {
	X, Y    float32
	Radius  float32
	engaged bool
	pulse   pulse
}

func NewAutopilotIndicator(x, y, radius float32) *AutopilotIndicator {
	return &AutopilotIndicator{X: x, Y: y, Radius: radius}
}

// Set updates the lamp; a change of state triggers the pulse.
func (i *AutopilotIndicator) Set(engaged bool) {
	if engaged != i.engaged {
		i.pulse.trigger()
	}
	i.engaged = engaged
}

func (i *AutopilotIndicator) Engaged() bool { return i.engaged }

func (i *AutopilotIndicator) Draw(screen *ebiten.Image, on, off color.Color) {
	radius := i.Radius * i.pulse.scale()
	clr := off
	if i.engaged {
		clr = on
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, radius, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, radius, 1, color.White, true)
}

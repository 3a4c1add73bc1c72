// internal/ui/speed_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton cycles through the time multipliers. Each state has its own
// colour.
type SpeedButton struct {
	X, Y         float32
	Size         float32
	StateColors  []color.RGBA
	CurrentState int
	pulse        pulse
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	size := b.Size * b.pulse.scale()
	clr := b.StateColors[b.CurrentState]

	height := size * 1.2
	width := size
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, clr)
	}
}

func (b *SpeedButton) IsClicked(mx, my int) bool {
	return inCircle(mx, my, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.pulse.trigger()
}

// internal/ui/pause_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton draws two bars while running and a play triangle while
// paused.
type PauseButton struct {
	X, Y       float32
	Size       float32
	IsPaused   bool
	PauseColor color.Color
	PlayColor  color.Color
	pulse      pulse
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	size := b.Size * b.pulse.scale()

	if b.IsPaused {
		var path vector.Path
		path.MoveTo(b.X-size, b.Y-size*1.2)
		path.LineTo(b.X-size, b.Y+size*1.2)
		path.LineTo(b.X+size, b.Y)
		path.Close()
		fillPath(screen, &path, b.PlayColor)
		return
	}

	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

func (b *PauseButton) IsClicked(mx, my int) bool {
	return inCircle(mx, my, b.X, b.Y, b.Size*1.5)
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.pulse.trigger()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}

// fillPath fills a closed path with a solid colour.
func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

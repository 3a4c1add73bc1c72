// pkg/render/rover_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"go-rover-autopilot/internal/config"
	"go-rover-autopilot/internal/entity"
	"go-rover-autopilot/internal/geo"
	"go-rover-autopilot/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	metersPerDegree = config.BodyRadius * math.Pi / 180
	gridSpacing     = 100.0 // metres
)

// RoverRenderer draws rovers and waypoints on a flat projection centred on
// Center.
type RoverRenderer struct {
	ecs     *entity.ECS
	face    font.Face
	colors  Palette
	Center  geo.LatLng
	Width   int
	Height  int
	Scale   float64 // metres per pixel
	ShowHUD bool
}

func NewRoverRenderer(ecs *entity.ECS, center geo.LatLng, colors Palette) *RoverRenderer {
	return &RoverRenderer{
		ecs:     ecs,
		face:    basicfont.Face7x13,
		colors:  colors,
		Center:  center,
		Width:   config.ScreenWidth,
		Height:  config.ScreenHeight,
		Scale:   config.MetersPerPixel,
		ShowHUD: true,
	}
}

// Project maps a surface position to screen pixels.
func (r *RoverRenderer) Project(p geo.LatLng) (float32, float32) {
	dx := (p.Lng - r.Center.Lng) * metersPerDegree * math.Cos(utils.Radians(r.Center.Lat))
	dy := (p.Lat - r.Center.Lat) * metersPerDegree
	x := float64(r.Width)/2 + dx/r.Scale
	y := float64(r.Height)/2 - dy/r.Scale
	return float32(x), float32(y)
}

func (r *RoverRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.colors.Background)
	r.drawGrid(screen)

	for id, wp := range r.ecs.Waypoints {
		pos, hasPos := r.ecs.Positions[id]
		if !hasPos {
			continue
		}
		x, y := r.Project(pos.LatLng)
		radius := float32(config.WaypointRadius / r.Scale)
		wpColor := r.colors.Waypoint
		if wp.Reached {
			wpColor = DarkenColor(wpColor)
			vector.DrawFilledCircle(screen, x, y, radius/2, wpColor, true)
		}
		vector.StrokeCircle(screen, x, y, radius, r.colors.Stroke, wpColor, true)
		text.Draw(screen, wp.Name, r.face, int(x)+int(radius)+2, int(y)+config.TextOffsetY, r.colors.Text)
	}

	for _, id := range r.ecs.RoverIDs() {
		pos, hasPos := r.ecs.Positions[id]
		m, hasMotion := r.ecs.Motions[id]
		if !hasPos || !hasMotion {
			continue
		}
		x, y := r.Project(pos.LatLng)

		roverColor := r.colors.Rover
		radius := float32(config.RoverRadius)
		if rd, ok := r.ecs.Renderables[id]; ok {
			roverColor = rd.Color
			radius = rd.Radius
		}
		label := r.ecs.Rovers[id].Name
		if ap, ok := r.ecs.Autopilots[id]; ok && ap.Engaged {
			roverColor = r.colors.Autopilot
			label = fmt.Sprintf("%s %+.0f", label, ap.WheelSteering.Bearing())
		}

		r.drawRay(screen, x, y, m.VelocityHeading, config.HeadingLineScale*1.5, r.colors.Velocity)
		vector.DrawFilledCircle(screen, x, y, radius, roverColor, true)
		r.drawRay(screen, x, y, m.Heading, config.HeadingLineScale, r.colors.Heading)
		text.Draw(screen, label, r.face, int(x)+int(radius)+4, int(y)+config.TextOffsetY, r.colors.Text)
	}

	if r.ShowHUD {
		r.drawHUD(screen)
	}
}

// drawHUD prints one telemetry line per rover in the top-left corner.
func (r *RoverRenderer) drawHUD(screen *ebiten.Image) {
	text.Draw(screen, fmt.Sprintf("t=%.1fs", r.ecs.SimTime), r.face, 10, 20, r.colors.Text)
	line := 0
	for _, id := range r.ecs.RoverIDs() {
		m, hasMotion := r.ecs.Motions[id]
		pilot, hasPilot := r.ecs.Pilots[id]
		if !hasMotion || !hasPilot {
			continue
		}
		line++
		msg := fmt.Sprintf("%-10s hdg %5.1f  spd %5.1f  steer %+.2f  thr %+.2f",
			r.ecs.Rovers[id].Name, m.Heading, m.Speed, pilot.Applied.WheelSteer, pilot.Applied.MainThrottle)
		text.Draw(screen, msg, r.face, 10, 20+line*16, r.colors.Text)
	}
}

func (r *RoverRenderer) drawGrid(screen *ebiten.Image) {
	step := float32(gridSpacing / r.Scale)
	if step < 8 {
		return
	}
	cx, cy := float32(r.Width)/2, float32(r.Height)/2
	w, h := float32(r.Width), float32(r.Height)
	for x := float32(math.Mod(float64(cx), float64(step))); x < w; x += step {
		vector.StrokeLine(screen, x, 0, x, h, 1, r.colors.Grid, false)
	}
	for y := float32(math.Mod(float64(cy), float64(step))); y < h; y += step {
		vector.StrokeLine(screen, 0, y, w, y, 1, r.colors.Grid, false)
	}
}

func (r *RoverRenderer) drawRay(screen *ebiten.Image, x, y float32, heading, length float64, clr color.Color) {
	rad := utils.Radians(heading)
	ex := x + float32(math.Sin(rad)*length)
	ey := y - float32(math.Cos(rad)*length)
	vector.StrokeLine(screen, x, y, ex, ey, r.colors.Stroke, clr, true)
}

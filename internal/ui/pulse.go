// internal/ui/pulse.go
package ui

import (
	"math"
	"time"

	"go-rover-autopilot/internal/config"
)

// pulse is the shared click animation: a short swell that decays back to
// the rest size.
type pulse struct {
	lastClick time.Time
}

func (p *pulse) trigger() { p.lastClick = time.Now() }

func (p *pulse) scale() float32 {
	elapsed := time.Since(p.lastClick).Seconds()
	return float32(1.0 + config.ClickPulseScale*math.Exp(-elapsed*config.ClickPulseDecay))
}

// inCircle reports whether (px, py) lies within r of (x, y).
func inCircle(px, py int, x, y, r float32) bool {
	dx := float32(px) - x
	dy := float32(py) - y
	return dx*dx+dy*dy <= r*r
}

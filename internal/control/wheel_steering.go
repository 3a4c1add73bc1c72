package control

import (
	"errors"
	"fmt"
	"math"

	"go-rover-autopilot/internal/config"
	"go-rover-autopilot/internal/utils"
)

// WheelSteeringName is the name programs lock the wheel steering channel by.
const WheelSteeringName = "WHEELSTEERING"

var wheelSteeringExpected = fmt.Sprintf("%s, %s, or %s (compass heading)",
	"Vessel", "GeoCoordinates", "Scalar")

// ErrNoContext is returned by UpdateValue when the channel is unbound and no
// context was given to bind it to.
var ErrNoContext = errors.New("no control context")

// WheelSteering steers a wheeled vessel towards a bearing. It only writes to
// the tick state while a context holds it.
type WheelSteering struct {
	enabled       bool
	controlPartID uint32
	shared        Context

	value float64

	vehicle Vehicle
	nav     Navigator
}

var _ Parameter = (*WheelSteering)(nil)

// NewWheelSteering creates a disabled channel for vehicle.
func NewWheelSteering(vehicle Vehicle, nav Navigator) *WheelSteering {
	return &WheelSteering{
		vehicle: vehicle,
		nav:     nav,
	}
}

func (w *WheelSteering) ControlPartID() uint32 { return w.controlPartID }
func (w *WheelSteering) Enabled() bool         { return w.enabled }
func (w *WheelSteering) IsAutopilot() bool     { return true }
func (w *WheelSteering) FightsWithSAS() bool   { return false }
func (w *WheelSteering) Shared() Context       { return w.shared }

// Bearing returns the stored target bearing, meaningful only while enabled.
func (w *WheelSteering) Bearing() float64 { return w.value }

// ResponsibleVehicle returns the vehicle of the bound context, or nil.
func (w *WheelSteering) ResponsibleVehicle() Vehicle {
	if w.shared == nil {
		return nil
	}
	return w.shared.Vehicle()
}

// Value returns the target bearing while enabled and the raw manual
// throttle otherwise.
func (w *WheelSteering) Value() any {
	if w.enabled {
		return w.value
	}
	return w.vehicle.MainThrottle()
}

// CopyFrom takes over the value of another parameter during a hand-off.
func (w *WheelSteering) CopyFrom(origin Parameter) error {
	v, err := ToFloat(origin.Value())
	if err != nil {
		return fmt.Errorf("copy %s: %w", WheelSteeringName, err)
	}
	w.value = v
	return nil
}

func (w *WheelSteering) EnableControl(ctx Context) {
	w.controlPartID = ctx.ControlPartID()
	w.shared = ctx
	w.enabled = true
}

func (w *WheelSteering) DisableControl() {
	w.shared = nil
	w.controlPartID = 0
	w.enabled = false
}

// DisableControlFor releases the channel only if ctx owns it.
func (w *WheelSteering) DisableControlFor(ctx Context) {
	if ctx.ControlPartID() != w.controlPartID {
		return
	}
	w.DisableControl()
}

// UpdateValue binds the channel to ctx if needed and steers by value. On
// error the previous bearing is kept.
func (w *WheelSteering) UpdateValue(value any, ctx Context) error {
	if !w.enabled {
		if ctx == nil {
			return ErrNoContext
		}
		w.EnableControl(ctx)
	}

	target, err := ResolveTarget(value)
	if err != nil {
		return &WrongControlValueTypeError{
			Control:  WheelSteeringName,
			Got:      KindName(value),
			Expected: wheelSteeringExpected,
			Err:      err,
		}
	}

	w.value = w.bearing(target)
	return nil
}

func (w *WheelSteering) bearing(target Target) float64 {
	self := w.shared.Vehicle()

	switch t := target.(type) {
	case VesselBearing:
		return w.nav.TargetBearing(self, t.Target.TargetVessel())
	case CoordBearing:
		return t.Coord.Bearing()
	case Heading:
		b := math.RoundToEven(float64(t)) - math.RoundToEven(self.Heading())
		return utils.NormalizeAngle(b)
	}
	return w.value
}

// UpdateAutopilot writes the wheel steer command. Nothing is written while
// the vessel is close to standing still.
func (w *WheelSteering) UpdateAutopilot(s *State) {
	if !w.enabled {
		return
	}

	v := w.shared.Vehicle()
	if !(v.HorizontalSurfaceSpeed() > config.MinSteeringSpeed) {
		return
	}

	steer := SteerCommand(w.value, utils.AngleDelta(v.Heading(), v.VelocityHeading()))
	s.WheelSteer = steer
}

func (w *WheelSteering) SuppressAutopilot(s *State) bool {
	return w.enabled
}

// SteerCommand maps a bearing onto the [-1, 1] steer range. When the vessel
// travels backwards relative to its nose (|travelDelta| > 90) the command is
// reversed.
func SteerCommand(bearing, travelDelta float64) float64 {
	steer := utils.Clamp(bearing/-config.SteeringDegreesPerUnit, -1, 1)
	if math.Abs(travelDelta) <= 90 {
		return steer
	}
	return -steer
}

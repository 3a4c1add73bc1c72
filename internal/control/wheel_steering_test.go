package control

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWheelSteering_StartsDisabled(t *testing.T) {
	w, _, _ := newChannel()

	assert.False(t, w.Enabled())
	assert.Zero(t, w.ControlPartID())
	assert.Nil(t, w.Shared())
	assert.Nil(t, w.ResponsibleVehicle())
	assert.True(t, w.IsAutopilot())
	assert.False(t, w.FightsWithSAS())
}

func TestWheelSteering_EnableDisable(t *testing.T) {
	w, v, ctx := newChannel()

	w.EnableControl(ctx)
	assert.True(t, w.Enabled())
	assert.Equal(t, uint32(7), w.ControlPartID())
	assert.Same(t, ctx, w.Shared())
	assert.Same(t, v, w.ResponsibleVehicle())

	w.DisableControl()
	assert.False(t, w.Enabled())
	assert.Zero(t, w.ControlPartID())
	assert.Nil(t, w.Shared())

	// Twice is the same as once.
	w.DisableControl()
	assert.False(t, w.Enabled())
	assert.Zero(t, w.ControlPartID())
	assert.Nil(t, w.Shared())
}

func TestWheelSteering_EnableLastWriterWins(t *testing.T) {
	w, v, a := newChannel()
	b := &fakeContext{id: 9, vehicle: v}

	w.EnableControl(a)
	w.EnableControl(b)

	assert.True(t, w.Enabled())
	assert.Equal(t, uint32(9), w.ControlPartID())
	assert.Same(t, b, w.Shared())
}

func TestWheelSteering_DisableControlForChecksOwner(t *testing.T) {
	w, v, owner := newChannel()
	other := &fakeContext{id: 8, vehicle: v}

	w.EnableControl(owner)
	w.DisableControlFor(other)

	assert.True(t, w.Enabled())
	assert.Equal(t, uint32(7), w.ControlPartID())
	assert.Same(t, owner, w.Shared())

	w.DisableControlFor(owner)
	assert.False(t, w.Enabled())
	assert.Zero(t, w.ControlPartID())
	assert.Nil(t, w.Shared())
}

func TestWheelSteering_DisableControlForWhenDisabled(t *testing.T) {
	w, v, _ := newChannel()

	w.DisableControlFor(&fakeContext{id: 3, vehicle: v})

	assert.False(t, w.Enabled())
	assert.Nil(t, w.Shared())
}

func TestWheelSteering_ValueFallsBackToThrottle(t *testing.T) {
	w, v, ctx := newChannel()
	v.throttle = 0.42

	assert.Equal(t, 0.42, w.Value())

	require.NoError(t, w.UpdateValue(30.0, ctx))
	assert.Equal(t, 30.0, w.Value())

	// The bearing survives a disable but is no longer visible.
	w.DisableControl()
	assert.Equal(t, 0.42, w.Value())
	assert.Equal(t, 30.0, w.Bearing())
}

func TestWheelSteering_UpdateValueEnablesLazily(t *testing.T) {
	w, _, ctx := newChannel()

	require.NoError(t, w.UpdateValue(45, ctx))

	assert.True(t, w.Enabled())
	assert.Equal(t, uint32(7), w.ControlPartID())
	assert.Equal(t, 45.0, w.Bearing())
}

func TestWheelSteering_UpdateValueKeepsOwner(t *testing.T) {
	w, v, owner := newChannel()
	other := &fakeContext{id: 8, vehicle: v}

	require.NoError(t, w.UpdateValue(10, owner))
	require.NoError(t, w.UpdateValue(20, other))

	assert.Equal(t, uint32(7), w.ControlPartID())
	assert.Equal(t, 20.0, w.Bearing())
}

func TestWheelSteering_UpdateValueWithoutContext(t *testing.T) {
	w, _, _ := newChannel()

	err := w.UpdateValue(10, nil)

	assert.ErrorIs(t, err, ErrNoContext)
	assert.False(t, w.Enabled())
}

func TestWheelSteering_HeadingBearing(t *testing.T) {
	tests := []struct {
		name    string
		target  any
		heading float64
		want    float64
	}{
		{"straight ahead", 90.0, 90, 0},
		{"right", 100.0, 90, 10},
		{"left", 80.0, 90, -10},
		{"wrap right", 1.0, 359, 2},
		{"wrap left", 359.0, 1, -2},
		{"over 360", 370.0, 10, 0},
		{"exactly behind", 180.0, 0, 180},
		{"behind the other way", 0.0, 180, -180},
		{"rounds target", 45.4, 0, 45},
		{"rounds heading", 45.0, 10.6, 34},
		{"integer", 30, 0, 30},
		{"numeric string", "120", 90, 30},
		{"float32", float32(15), 0, 15},
		{"scalar", Heading(200), 0, -160},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, v, ctx := newChannel()
			v.heading = tt.heading

			require.NoError(t, w.UpdateValue(tt.target, ctx))
			assert.Equal(t, tt.want, w.Bearing())
		})
	}
}

func TestWheelSteering_HeadingRoundsHalfToEven(t *testing.T) {
	w, v, ctx := newChannel()
	v.heading = 0

	require.NoError(t, w.UpdateValue(2.5, ctx))
	assert.Equal(t, 2.0, w.Bearing())

	require.NoError(t, w.UpdateValue(3.5, ctx))
	assert.Equal(t, 4.0, w.Bearing())
}

func TestWheelSteering_HeadingBearingRange(t *testing.T) {
	w, v, ctx := newChannel()

	for target := 0; target < 360; target += 7 {
		for heading := 0; heading < 360; heading += 11 {
			v.heading = float64(heading)
			require.NoError(t, w.UpdateValue(float64(target), ctx))

			b := w.Bearing()
			assert.GreaterOrEqual(t, b, -180.0)
			assert.LessOrEqual(t, b, 180.0)
			diff := math.Mod(b-float64(target-heading), 360)
			assert.Zero(t, diff, "target %d heading %d bearing %v", target, heading, b)
		}
	}
}

func TestWheelSteering_CoordinateBearing(t *testing.T) {
	w, _, ctx := newChannel()

	require.NoError(t, w.UpdateValue(fakeCoord{bearing: -33.5}, ctx))

	assert.Equal(t, -33.5, w.Bearing())
}

func TestWheelSteering_VesselBearing(t *testing.T) {
	v := &fakeVehicle{speed: 5}
	nav := &fakeNav{bearing: 12}
	w := NewWheelSteering(v, nav)
	ctx := &fakeContext{id: 7, vehicle: v}
	target := &fakeVehicle{heading: 200}

	require.NoError(t, w.UpdateValue(target, ctx))

	assert.Equal(t, 12.0, w.Bearing())
	assert.Same(t, v, nav.from)
	assert.Same(t, target, nav.to)
}

func TestWheelSteering_RejectsUnknownValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		kind  string
		cause error
	}{
		{"boolean", true, "Boolean", ErrNotNumeric},
		{"nil", nil, "None", ErrNotNumeric},
		{"word", "north", "String", ErrNotNumeric},
		{"struct", struct{}{}, "struct {}", ErrNotNumeric},
		{"nan", math.NaN(), "Scalar", ErrInvalidNumber},
		{"inf", math.Inf(1), "Scalar", ErrInvalidNumber},
		{"nan string", "NaN", "String", ErrInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, ctx := newChannel()
			require.NoError(t, w.UpdateValue(25.0, ctx))

			err := w.UpdateValue(tt.value, ctx)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrWrongControlValueType)
			assert.ErrorIs(t, err, tt.cause)

			var wrong *WrongControlValueTypeError
			require.True(t, errors.As(err, &wrong))
			assert.Equal(t, "WHEELSTEERING", wrong.Control)
			assert.Equal(t, tt.kind, wrong.Got)
			assert.Equal(t, "Vessel, GeoCoordinates, or Scalar (compass heading)", wrong.Expected)
			assert.Contains(t, err.Error(), tt.kind)

			assert.Equal(t, 25.0, w.Bearing(), "bearing must be unchanged")
			assert.True(t, w.Enabled())
		})
	}
}

func TestWheelSteering_RejectedValueStillEnables(t *testing.T) {
	w, _, ctx := newChannel()

	err := w.UpdateValue(false, ctx)

	assert.ErrorIs(t, err, ErrWrongControlValueType)
	assert.True(t, w.Enabled())
	assert.Zero(t, w.Bearing())
}

func TestWheelSteering_UpdateAutopilot(t *testing.T) {
	tests := []struct {
		name            string
		bearing         float64
		heading         float64
		velocityHeading float64
		want            float64
	}{
		{"forward right", 5, 90, 135, -0.5},
		{"forward left", -5, 90, 45, 0.5},
		{"backward right", 5, 90, 225, 0.5},
		{"backward left", -5, 0, 180, -0.5},
		{"clamped", 200, 0, 0, -1},
		{"clamped left", -45, 0, 0, 1},
		{"edge of forward", 5, 0, 90, -0.5},
		{"just backward", 5, 0, 90.5, 0.5},
		{"backward across north", 5, 10, 260, 0.5},
		{"wrap is still forward", 5, 350, 10, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, v, ctx := newChannel()
			w.EnableControl(ctx)
			w.value = tt.bearing
			v.heading, v.velocityHeading = tt.heading, tt.velocityHeading

			s := &State{WheelSteer: 0.3}
			w.UpdateAutopilot(s)

			assert.InDelta(t, tt.want, s.WheelSteer, 1e-9)
		})
	}
}

func TestWheelSteering_UpdateAutopilotSpeedGate(t *testing.T) {
	for _, speed := range []float64{0, 0.05, 0.1} {
		w, v, ctx := newChannel()
		v.speed = speed

		for h := 0; h < 360; h += 15 {
			require.NoError(t, w.UpdateValue(float64(h), ctx))
			s := &State{WheelSteer: 0.25}
			w.UpdateAutopilot(s)
			assert.Equal(t, 0.25, s.WheelSteer, "speed %v heading %d", speed, h)
		}
	}
}

func TestWheelSteering_UpdateAutopilotWhenDisabled(t *testing.T) {
	w, _, ctx := newChannel()
	require.NoError(t, w.UpdateValue(90.0, ctx))
	w.DisableControl()

	s := &State{WheelSteer: 0.25}
	w.UpdateAutopilot(s)

	assert.Equal(t, 0.25, s.WheelSteer)
}

func TestWheelSteering_UsesBoundVehicle(t *testing.T) {
	own := &fakeVehicle{speed: 0}
	driven := &fakeVehicle{heading: 0, velocityHeading: 0, speed: 3}
	w := NewWheelSteering(own, &fakeNav{})

	require.NoError(t, w.UpdateValue(20.0, &fakeContext{id: 4, vehicle: driven}))
	s := &State{}
	w.UpdateAutopilot(s)

	assert.Equal(t, -1.0, s.WheelSteer)
}

func TestWheelSteering_SuppressAutopilot(t *testing.T) {
	w, _, ctx := newChannel()
	s := &State{}

	assert.False(t, w.SuppressAutopilot(s))
	w.EnableControl(ctx)
	assert.True(t, w.SuppressAutopilot(s))
	w.DisableControlFor(ctx)
	assert.False(t, w.SuppressAutopilot(s))
}

func TestWheelSteering_CopyFrom(t *testing.T) {
	w, _, ctx := newChannel()
	other, _, _ := newChannel()
	require.NoError(t, other.UpdateValue(60.0, ctx))

	require.NoError(t, w.CopyFrom(other))
	assert.Equal(t, 60.0, w.Bearing())
}

func TestWheelSteering_CopyFromDisabledTakesThrottle(t *testing.T) {
	w, _, _ := newChannel()
	other, v, _ := newChannel()
	v.throttle = 0.8

	require.NoError(t, w.CopyFrom(other))
	assert.Equal(t, 0.8, w.Bearing())
}

func TestWheelSteering_CopyFromNonNumeric(t *testing.T) {
	w, _, ctx := newChannel()
	require.NoError(t, w.UpdateValue(15.0, ctx))

	err := w.CopyFrom(&fakeParam{value: struct{ X int }{1}})

	assert.ErrorIs(t, err, ErrNotNumeric)
	assert.Equal(t, 15.0, w.Bearing())
}

func TestSteerCommand(t *testing.T) {
	assert.Equal(t, -0.5, SteerCommand(5, 45))
	assert.Equal(t, 0.5, SteerCommand(5, 135))
	assert.Equal(t, -1.0, SteerCommand(200, 0))
	assert.Equal(t, 1.0, SteerCommand(200, -180))
	assert.Equal(t, 1.0, math.Abs(SteerCommand(200, 45)))
}

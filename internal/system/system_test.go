package system

import (
	"testing"

	"go-rover-autopilot/internal/component"
	"go-rover-autopilot/internal/control"
	"go-rover-autopilot/internal/entity"
	"go-rover-autopilot/internal/event"
	"go-rover-autopilot/internal/geo"
	"go-rover-autopilot/internal/types"
	"go-rover-autopilot/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type program struct {
	id     uint32
	vessel control.Vehicle
}

func (p *program) ControlPartID() uint32    { return p.id }
func (p *program) Vehicle() control.Vehicle { return p.vessel }

func newRover(ecs *entity.ECS, heading, speed float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Rovers[id] = &component.Rover{Name: "bravo"}
	ecs.Positions[id] = &component.Position{}
	ecs.Motions[id] = &component.Motion{
		Heading: heading, VelocityHeading: heading, Speed: speed,
		MaxSpeed: 10, TurnRate: 30, Accel: 2,
	}
	ecs.Pilots[id] = &component.Pilot{WheelSteer: 0.4, MainThrottle: 0.5}
	ecs.Autopilots[id] = &component.Autopilot{
		WheelSteering: control.NewWheelSteering(ecs.Vessel(id), geo.Navigator{}),
	}
	return id
}

func collect(d *event.Dispatcher, kinds ...event.EventType) *[]event.Event {
	var got []event.Event
	for _, et := range kinds {
		d.Subscribe(et, event.ListenerFunc(func(e event.Event) { got = append(got, e) }))
	}
	return &got
}

func TestAutopilotSystem_ManualPassesThrough(t *testing.T) {
	ecs := entity.NewECS()
	id := newRover(ecs, 0, 5)
	s := NewAutopilotSystem(ecs, event.NewDispatcher())

	s.Update(0.02)

	applied := ecs.Pilots[id].Applied
	assert.Equal(t, 0.4, applied.WheelSteer)
	assert.Equal(t, 0.5, applied.MainThrottle)
}

func TestAutopilotSystem_ChannelOverridesManual(t *testing.T) {
	ecs := entity.NewECS()
	id := newRover(ecs, 0, 5)
	d := event.NewDispatcher()
	got := collect(d, event.SteeringEngaged, event.SteeringReleased)
	s := NewAutopilotSystem(ecs, d)

	ws := ecs.Autopilots[id].WheelSteering
	ctx := &program{id: 7, vessel: ecs.Vessel(id)}
	require.NoError(t, ws.UpdateValue(5.0, ctx))

	s.Update(0.02)
	assert.Equal(t, -0.5, ecs.Pilots[id].Applied.WheelSteer)
	assert.Equal(t, 0.5, ecs.Pilots[id].Applied.MainThrottle)

	require.Len(t, *got, 1)
	assert.Equal(t, event.SteeringEngaged, (*got)[0].Type)
	assert.Equal(t, event.SteeringData{Rover: id, PartID: 7}, (*got)[0].Data)

	// No new event while nothing changes.
	s.Update(0.02)
	assert.Len(t, *got, 1)

	ws.DisableControlFor(ctx)
	s.Update(0.02)
	assert.Equal(t, 0.4, ecs.Pilots[id].Applied.WheelSteer)
	require.Len(t, *got, 2)
	assert.Equal(t, event.SteeringReleased, (*got)[1].Type)
	assert.Equal(t, event.SteeringData{Rover: id, PartID: 7}, (*got)[1].Data)
}

func TestAutopilotSystem_ActiveChannelSilencesManualAtRest(t *testing.T) {
	ecs := entity.NewECS()
	id := newRover(ecs, 0, 0)
	s := NewAutopilotSystem(ecs, event.NewDispatcher())

	require.NoError(t, ecs.Autopilots[id].WheelSteering.UpdateValue(90.0, &program{id: 7, vessel: ecs.Vessel(id)}))
	s.Update(0.02)

	assert.Zero(t, ecs.Pilots[id].Applied.WheelSteer)
}

func TestMovementSystem_Straight(t *testing.T) {
	ecs := entity.NewECS()
	id := newRover(ecs, 90, 10)
	ecs.Pilots[id].Applied = control.State{MainThrottle: 1}
	s := NewMovementSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1))

	s.Update(1)

	m := ecs.Motions[id]
	assert.Equal(t, 90.0, m.Heading)
	assert.Equal(t, 10.0, m.Speed)
	pos := ecs.Positions[id].LatLng
	assert.InDelta(t, 0, pos.Lat, 1e-12)
	assert.Greater(t, pos.Lng, 0.0)
}

func TestMovementSystem_SteerSigns(t *testing.T) {
	tests := []struct {
		name    string
		speed   float64
		steer   float64
		turning float64 // sign of the heading change
	}{
		{"forward negative steer turns right", 5, -1, 1},
		{"forward positive steer turns left", 5, 1, -1},
		{"reverse negative steer swings left", -5, -1, -1},
		{"reverse positive steer swings right", -5, 1, 1},
		{"standing still", 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			id := newRover(ecs, 180, tt.speed)
			throttle := tt.speed / 10
			ecs.Pilots[id].Applied = control.State{WheelSteer: tt.steer, MainThrottle: throttle}
			s := NewMovementSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1))

			s.Update(0.1)

			delta := utils.AngleDelta(180, ecs.Motions[id].Heading)
			switch {
			case tt.turning > 0:
				assert.Greater(t, delta, 0.0)
			case tt.turning < 0:
				assert.Less(t, delta, 0.0)
			default:
				assert.Zero(t, delta)
			}
		})
	}
}

func TestMovementSystem_ReverseVelocityHeading(t *testing.T) {
	ecs := entity.NewECS()
	id := newRover(ecs, 10, -4)
	ecs.Pilots[id].Applied = control.State{MainThrottle: -0.4}
	s := NewMovementSystem(ecs, event.NewDispatcher(), utils.NewPRNGService(1))

	s.Update(0.1)

	m := ecs.Motions[id]
	assert.Equal(t, 190.0, m.VelocityHeading)
	assert.Equal(t, 4.0, ecs.Vessel(id).HorizontalSurfaceSpeed())
}

func TestMovementSystem_WaypointReached(t *testing.T) {
	ecs := entity.NewECS()
	newRover(ecs, 0, 0)
	wp := ecs.NewEntity()
	ecs.Waypoints[wp] = &component.Waypoint{Name: "alpha"}
	ecs.Positions[wp] = &component.Position{LatLng: geo.LatLng{Lat: 0.0001}}

	d := event.NewDispatcher()
	got := collect(d, event.WaypointReached)
	s := NewMovementSystem(ecs, d, utils.NewPRNGService(1))

	s.Update(0.02)
	s.Update(0.02)

	require.Len(t, *got, 1)
	assert.Equal(t, "alpha", (*got)[0].Data.(event.WaypointData).Name)
	assert.True(t, ecs.Waypoints[wp].Reached)
}

// Closing the loop: the channel steers the rover onto the locked heading,
// forwards and in reverse.
func TestAutopilotConvergesOnHeading(t *testing.T) {
	for _, throttle := range []float64{0.5, -0.5} {
		ecs := entity.NewECS()
		id := newRover(ecs, 0, 0)
		ecs.Pilots[id].WheelSteer = 0
		ecs.Pilots[id].MainThrottle = throttle
		d := event.NewDispatcher()
		ap := NewAutopilotSystem(ecs, d)
		mv := NewMovementSystem(ecs, d, utils.NewPRNGService(1))
		ws := ecs.Autopilots[id].WheelSteering
		ctx := &program{id: 7, vessel: ecs.Vessel(id)}

		for i := 0; i < 1500; i++ {
			require.NoError(t, ws.UpdateValue(120.0, ctx))
			ap.Update(0.02)
			mv.Update(0.02)
		}

		assert.InDelta(t, 120, ecs.Motions[id].Heading, 1, "throttle %v", throttle)
	}
}

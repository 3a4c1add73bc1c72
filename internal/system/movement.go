// internal/system/movement.go
package system

import (
	"math"

	"go-rover-autopilot/internal/config"
	"go-rover-autopilot/internal/entity"
	"go-rover-autopilot/internal/event"
	"go-rover-autopilot/internal/geo"
	"go-rover-autopilot/internal/utils"
)

// fullTurnSpeed is the speed, in m/s, from which the wheels have full
// turning authority.
const fullTurnSpeed = 2.0

// MovementSystem integrates rover kinematics from the applied control state.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher, rng: rng}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.RoverIDs() {
		pos, hasPos := s.ecs.Positions[id]
		m, hasMotion := s.ecs.Motions[id]
		pilot, hasPilot := s.ecs.Pilots[id]
		if !hasPos || !hasMotion || !hasPilot {
			continue
		}
		applied := pilot.Applied

		throttle := applied.WheelThrottle
		if throttle == 0 {
			throttle = applied.MainThrottle
		}
		targetSpeed := utils.Clamp(throttle, -1, 1) * m.MaxSpeed
		m.Speed = approach(m.Speed, targetSpeed, m.Accel*deltaTime)

		// Negative steer turns right. Reversing swaps the direction the
		// nose swings.
		authority := utils.Clamp(m.Speed/fullTurnSpeed, -1, 1)
		turn := -utils.Clamp(applied.WheelSteer, -1, 1) * m.TurnRate * deltaTime * authority
		if rover, ok := s.ecs.Rovers[id]; ok && rover.SlipJitter > 0 {
			turn += s.rng.Jitter(rover.SlipJitter*deltaTime) * math.Abs(authority)
		}
		m.Heading = utils.NormalizeHeading(m.Heading + turn)

		if m.Speed < 0 {
			m.VelocityHeading = utils.NormalizeHeading(m.Heading + 180)
		} else {
			m.VelocityHeading = m.Heading
		}

		if dist := math.Abs(m.Speed) * deltaTime; dist > 0 {
			pos.LatLng = geo.Destination(pos.LatLng, m.VelocityHeading, dist, config.BodyRadius)
		}
	}

	s.checkWaypoints()
}

func (s *MovementSystem) checkWaypoints() {
	for _, roverID := range s.ecs.RoverIDs() {
		pos, hasPos := s.ecs.Positions[roverID]
		if !hasPos {
			continue
		}
		for wpID, wp := range s.ecs.Waypoints {
			if wp.Reached {
				continue
			}
			wpPos, ok := s.ecs.Positions[wpID]
			if !ok {
				continue
			}
			if geo.Distance(pos.LatLng, wpPos.LatLng, config.BodyRadius) <= config.WaypointRadius {
				wp.Reached = true
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.WaypointReached,
					Data: event.WaypointData{Rover: roverID, Waypoint: wpID, Name: wp.Name},
				})
			}
		}
	}
}

// approach moves v towards target by at most step.
func approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}

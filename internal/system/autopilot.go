// internal/system/autopilot.go
package system

import (
	"go-rover-autopilot/internal/component"
	"go-rover-autopilot/internal/control"
	"go-rover-autopilot/internal/entity"
	"go-rover-autopilot/internal/event"
	"go-rover-autopilot/internal/types"
)

// AutopilotSystem is the control input collection pass. Each tick it starts
// from the pilot's manual input and lets every active parameter overwrite
// its part of the state. The result lands in Pilot.Applied for the
// physics step.
type AutopilotSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewAutopilotSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *AutopilotSystem {
	return &AutopilotSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *AutopilotSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.RoverIDs() {
		pilot, hasPilot := s.ecs.Pilots[id]
		if !hasPilot {
			continue
		}

		state := control.State{
			WheelSteer:    pilot.WheelSteer,
			WheelThrottle: pilot.WheelThrottle,
			MainThrottle:  pilot.MainThrottle,
		}

		ap, hasAutopilot := s.ecs.Autopilots[id]
		if hasAutopilot {
			for _, param := range ap.Parameters() {
				if !param.SuppressAutopilot(&state) {
					continue
				}
				// An active channel owns the wheel even when it has no
				// authority this tick.
				state.WheelSteer = 0
				param.UpdateAutopilot(&state)
			}
			s.trackEngagement(id, ap)
		}

		pilot.Applied = state
	}
}

func (s *AutopilotSystem) trackEngagement(id types.EntityID, ap *component.Autopilot) {
	engaged := ap.WheelSteering.Enabled()
	if engaged == ap.Engaged {
		return
	}
	ap.Engaged = engaged

	eventType := event.SteeringReleased
	if engaged {
		eventType = event.SteeringEngaged
		ap.EngagedBy = ap.WheelSteering.ControlPartID()
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: eventType,
		Data: event.SteeringData{Rover: id, PartID: ap.EngagedBy},
	})
	if !engaged {
		ap.EngagedBy = 0
	}
}

// internal/app/sim.go
package app

import (
	"fmt"
	"io"
	"log"

	"go-rover-autopilot/internal/component"
	"go-rover-autopilot/internal/config"
	"go-rover-autopilot/internal/control"
	"go-rover-autopilot/internal/defs"
	"go-rover-autopilot/internal/entity"
	"go-rover-autopilot/internal/event"
	"go-rover-autopilot/internal/geo"
	"go-rover-autopilot/internal/script"
	"go-rover-autopilot/internal/system"
	"go-rover-autopilot/internal/types"
	"go-rover-autopilot/internal/utils"
)

// Sim holds the simulation state and the per-tick pipeline.
type Sim struct {
	ECS             *entity.ECS
	Scenario        *defs.Scenario
	Center          geo.LatLng
	ScriptRunner    *script.Runner
	AutopilotSystem *system.AutopilotSystem
	MovementSystem  *system.MovementSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Logger          *log.Logger

	// Events counts dispatched events by type.
	Events map[event.EventType]int
}

// NewSim builds the world described by sc.
func NewSim(sc *defs.Scenario, logger *log.Logger) (*Sim, error) {
	if sc == nil {
		return nil, fmt.Errorf("%w: nil scenario", defs.ErrInvalidScenario)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(sc.Seed)
	s := &Sim{
		ECS:             ecs,
		Scenario:        sc,
		Center:          geo.LatLng{Lat: sc.Center.Lat, Lng: sc.Center.Lng},
		ScriptRunner:    script.NewRunner(eventDispatcher, logger),
		AutopilotSystem: system.NewAutopilotSystem(ecs, eventDispatcher),
		MovementSystem:  system.NewMovementSystem(ecs, eventDispatcher, rng),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Logger:          logger,
		Events:          make(map[event.EventType]int),
	}

	for _, wp := range sc.Waypoints {
		s.createWaypoint(wp)
	}
	for _, r := range sc.Rovers {
		s.createRover(r)
	}
	for _, p := range sc.Programs {
		if err := s.createProgram(p); err != nil {
			return nil, err
		}
	}

	listener := &SimEventListener{sim: s}
	eventDispatcher.Subscribe(event.SteeringEngaged, listener)
	eventDispatcher.Subscribe(event.SteeringReleased, listener)
	eventDispatcher.Subscribe(event.WaypointReached, listener)
	eventDispatcher.Subscribe(event.ProgramEnded, listener)
	eventDispatcher.Subscribe(event.ProgramError, listener)

	return s, nil
}

// Step advances the simulation by one tick: programs run first, then the
// control input collection pass, then physics.
func (s *Sim) Step(deltaTime float64) {
	s.ScriptRunner.Update(s.ECS.SimTime)
	s.AutopilotSystem.Update(deltaTime)
	s.MovementSystem.Update(deltaTime)
	s.ECS.SimTime += deltaTime
}

// Shutdown ends every running program.
func (s *Sim) Shutdown() {
	s.ScriptRunner.Terminate()
	s.AutopilotSystem.Update(0)
}

// Vessel returns the named rover's view.
func (s *Sim) Vessel(name string) (*entity.Vessel, bool) {
	id, ok := s.ECS.FindRover(name)
	if !ok {
		return nil, false
	}
	return s.ECS.Vessel(id), true
}

// WheelSteering returns the named rover's wheel steering channel.
func (s *Sim) WheelSteering(name string) (*control.WheelSteering, bool) {
	id, ok := s.ECS.FindRover(name)
	if !ok {
		return nil, false
	}
	ap, ok := s.ECS.Autopilots[id]
	if !ok {
		return nil, false
	}
	return ap.WheelSteering, true
}

func (s *Sim) createWaypoint(def defs.WaypointDefinition) types.EntityID {
	id := s.ECS.NewEntity()
	s.ECS.Positions[id] = &component.Position{LatLng: geo.LatLng{Lat: def.Lat, Lng: def.Lng}}
	s.ECS.Waypoints[id] = &component.Waypoint{Name: def.Name}
	return id
}

func (s *Sim) createRover(def defs.RoverDefinition) types.EntityID {
	id := s.ECS.NewEntity()
	s.ECS.Rovers[id] = &component.Rover{Name: def.Name, SlipJitter: def.SlipJitter}
	s.ECS.Positions[id] = &component.Position{LatLng: geo.LatLng{Lat: def.Lat, Lng: def.Lng}}
	heading := utils.NormalizeHeading(def.Heading)
	s.ECS.Motions[id] = &component.Motion{
		Heading:         heading,
		VelocityHeading: heading,
		MaxSpeed:        orDefault(def.MaxSpeed, config.DefaultMaxSpeed),
		TurnRate:        orDefault(def.TurnRate, config.DefaultTurnRate),
		Accel:           orDefault(def.Accel, config.DefaultAccel),
	}
	s.ECS.Pilots[id] = &component.Pilot{
		MainThrottle: utils.Clamp(def.Throttle, -1, 1),
		WheelSteer:   utils.Clamp(def.Steer, -1, 1),
	}
	s.ECS.Autopilots[id] = &component.Autopilot{
		WheelSteering: control.NewWheelSteering(s.ECS.Vessel(id), geo.Navigator{}),
	}
	s.ECS.Renderables[id] = &component.Renderable{
		Color:  config.RoverColor,
		Radius: config.RoverRadius,
		Label:  def.Name,
	}
	return id
}

func (s *Sim) createProgram(def defs.ProgramDefinition) error {
	roverID, ok := s.ECS.FindRover(def.Rover)
	if !ok {
		return fmt.Errorf("%w: unknown rover %q", defs.ErrInvalidScenario, def.Rover)
	}
	vessel := s.ECS.Vessel(roverID)

	steps := make([]script.Step, 0, len(def.Steps))
	for _, st := range def.Steps {
		step := script.Step{At: st.At, Op: script.Op(st.Op), Throttle: st.Throttle}
		if st.Op == defs.StepLock {
			value, err := s.lockValue(st, vessel)
			if err != nil {
				return err
			}
			step.Value = value
		}
		steps = append(steps, step)
	}

	s.ScriptRunner.Add(script.NewProgram(def.PartID, roverID, vessel,
		s.ECS.Pilots[roverID], s.ECS.Autopilots[roverID], steps))
	return nil
}

// lockValue turns a lock step into the value a program would assign.
func (s *Sim) lockValue(st defs.StepDefinition, vessel *entity.Vessel) (any, error) {
	switch {
	case st.Heading != nil:
		return *st.Heading, nil
	case st.Waypoint != "":
		id, ok := s.ECS.FindWaypoint(st.Waypoint)
		if !ok {
			return nil, fmt.Errorf("%w: unknown waypoint %q", defs.ErrInvalidScenario, st.Waypoint)
		}
		pos := s.ECS.Positions[id]
		return geo.NewCoordinates(pos.Lat, pos.Lng, vessel), nil
	case st.Vessel != "":
		id, ok := s.ECS.FindRover(st.Vessel)
		if !ok {
			return nil, fmt.Errorf("%w: unknown vessel %q", defs.ErrInvalidScenario, st.Vessel)
		}
		return s.ECS.Vessel(id), nil
	}
	return st.Value, nil
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// SimEventListener logs events and keeps counts for telemetry.
type SimEventListener struct {
	sim *Sim
}

func (l *SimEventListener) OnEvent(e event.Event) {
	l.sim.Events[e.Type]++
	t := l.sim.ECS.SimTime
	switch data := e.Data.(type) {
	case event.SteeringData:
		l.sim.Logger.Printf("t=%.2f %s rover=%d part=%d", t, e.Type, data.Rover, data.PartID)
	case event.WaypointData:
		l.sim.Logger.Printf("t=%.2f %s rover=%d waypoint=%s", t, e.Type, data.Rover, data.Name)
	case event.ProgramData:
		if data.Err != nil {
			l.sim.Logger.Printf("t=%.2f %s rover=%d part=%d: %v", t, e.Type, data.Rover, data.PartID, data.Err)
			return
		}
		l.sim.Logger.Printf("t=%.2f %s rover=%d part=%d", t, e.Type, data.Rover, data.PartID)
	default:
		l.sim.Logger.Printf("t=%.2f %s", t, e.Type)
	}
}

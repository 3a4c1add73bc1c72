// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-rover-autopilot/internal/component"
	"go-rover-autopilot/internal/types"
)

type ECS struct {
	SimTime     float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Motions     map[types.EntityID]*component.Motion
	Pilots      map[types.EntityID]*component.Pilot
	Autopilots  map[types.EntityID]*component.Autopilot
	Rovers      map[types.EntityID]*component.Rover
	Renderables map[types.EntityID]*component.Renderable
	Waypoints   map[types.EntityID]*component.Waypoint
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Motions:     make(map[types.EntityID]*component.Motion),
		Pilots:      make(map[types.EntityID]*component.Pilot),
		Autopilots:  make(map[types.EntityID]*component.Autopilot),
		Rovers:      make(map[types.EntityID]*component.Rover),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Waypoints:   make(map[types.EntityID]*component.Waypoint),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RoverIDs returns rover ids in creation order, so systems run
// deterministically.
func (ecs *ECS) RoverIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Rovers))
	for id := range ecs.Rovers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FindRover looks a rover up by name.
func (ecs *ECS) FindRover(name string) (types.EntityID, bool) {
	for id, r := range ecs.Rovers {
		if r.Name == name {
			return id, true
		}
	}
	return 0, false
}

// FindWaypoint looks a waypoint up by name.
func (ecs *ECS) FindWaypoint(name string) (types.EntityID, bool) {
	for id, wp := range ecs.Waypoints {
		if wp.Name == name {
			return id, true
		}
	}
	return 0, false
}

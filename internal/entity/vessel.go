package entity

import (
	"go-rover-autopilot/internal/control"
	"go-rover-autopilot/internal/geo"
	"go-rover-autopilot/internal/types"
)

// Vessel is a live view of a rover entity. It reads the ECS on every call,
// so it stays valid while the rover exists.
type Vessel struct {
	ecs *ECS
	ID  types.EntityID
}

var (
	_ geo.Locator          = (*Vessel)(nil)
	_ control.VesselTarget = (*Vessel)(nil)
	_ control.Named        = (*Vessel)(nil)
)

// Vessel returns a view of rover id, or nil if there is no such rover.
func (ecs *ECS) Vessel(id types.EntityID) *Vessel {
	if _, ok := ecs.Rovers[id]; !ok {
		return nil
	}
	return &Vessel{ecs: ecs, ID: id}
}

func (v *Vessel) Name() string {
	if r, ok := v.ecs.Rovers[v.ID]; ok {
		return r.Name
	}
	return ""
}

func (v *Vessel) Heading() float64 {
	if m, ok := v.ecs.Motions[v.ID]; ok {
		return m.Heading
	}
	return 0
}

func (v *Vessel) VelocityHeading() float64 {
	if m, ok := v.ecs.Motions[v.ID]; ok {
		return m.VelocityHeading
	}
	return 0
}

func (v *Vessel) HorizontalSurfaceSpeed() float64 {
	if m, ok := v.ecs.Motions[v.ID]; ok {
		return m.HorizontalSpeed()
	}
	return 0
}

func (v *Vessel) MainThrottle() float64 {
	if p, ok := v.ecs.Pilots[v.ID]; ok {
		return p.MainThrottle
	}
	return 0
}

func (v *Vessel) Position() geo.LatLng {
	if p, ok := v.ecs.Positions[v.ID]; ok {
		return p.LatLng
	}
	return geo.LatLng{}
}

func (v *Vessel) TargetVessel() control.Vehicle { return v }

func (v *Vessel) KindName() string { return "Vessel" }

func (v *Vessel) String() string { return "VESSEL(\"" + v.Name() + "\")" }

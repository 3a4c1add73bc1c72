package control

import "math"

// VesselTarget is a value designating another vessel.
type VesselTarget interface {
	TargetVessel() Vehicle
}

// GeoCoordinate is a surface position that knows its bearing from the
// vessel it was created for.
type GeoCoordinate interface {
	Bearing() float64
}

// Navigator computes the bearing from one vessel to another, relative to the
// first vessel's heading.
type Navigator interface {
	TargetBearing(from, to Vehicle) float64
}

// Target is a steering target resolved from a raw program value.
type Target interface {
	isTarget()
}

// VesselBearing steers towards another vessel.
type VesselBearing struct {
	Target VesselTarget
}

// CoordBearing steers towards a surface coordinate.
type CoordBearing struct {
	Coord GeoCoordinate
}

// Heading steers onto an absolute compass heading.
type Heading float64

func (VesselBearing) isTarget() {}
func (CoordBearing) isTarget()  {}
func (Heading) isTarget()       {}

// ResolveTarget classifies value once. Vessels win over coordinates, which
// win over anything numeric.
func ResolveTarget(value any) (Target, error) {
	switch v := value.(type) {
	case Target:
		if h, ok := v.(Heading); ok {
			return checkHeading(float64(h))
		}
		return v, nil
	case VesselTarget:
		return VesselBearing{Target: v}, nil
	case GeoCoordinate:
		return CoordBearing{Coord: v}, nil
	}

	f, err := ToFloat(value)
	if err != nil {
		return nil, err
	}
	return checkHeading(f)
}

func checkHeading(f float64) (Target, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrInvalidNumber
	}
	return Heading(f), nil
}

package geo

import (
	"go-rover-autopilot/internal/control"
	"go-rover-autopilot/internal/utils"
)

// Locator is a vehicle that knows where it is.
type Locator interface {
	control.Vehicle
	Position() LatLng
}

// Coordinates is a surface position seen from a particular vessel.
type Coordinates struct {
	Pos    LatLng
	Origin Locator
}

var (
	_ control.GeoCoordinate = Coordinates{}
	_ control.Named         = Coordinates{}
	_ control.Navigator     = Navigator{}
)

// NewCoordinates returns the position lat, lng as seen from origin.
func NewCoordinates(lat, lng float64, origin Locator) Coordinates {
	return Coordinates{Pos: LatLng{Lat: lat, Lng: lng}, Origin: origin}
}

// Heading is the compass heading from the origin vessel to the position.
func (c Coordinates) Heading() float64 {
	return InitialBearing(c.Origin.Position(), c.Pos)
}

// Bearing is the heading to the position relative to the origin vessel's
// nose, in [-180, 180].
func (c Coordinates) Bearing() float64 {
	return utils.AngleDelta(c.Origin.Heading(), c.Heading())
}

// Distance from the origin vessel, in metres.
func (c Coordinates) Distance(radius float64) float64 {
	return Distance(c.Origin.Position(), c.Pos, radius)
}

func (c Coordinates) KindName() string { return "GeoCoordinates" }

func (c Coordinates) String() string { return c.Pos.String() }

// Navigator computes vessel to vessel bearings for located vehicles.
type Navigator struct{}

// TargetBearing is the heading from one vessel to another relative to the
// first vessel's nose. Vehicles without a position yield 0.
func (Navigator) TargetBearing(from, to control.Vehicle) float64 {
	a, ok := from.(Locator)
	if !ok {
		return 0
	}
	b, ok := to.(Locator)
	if !ok {
		return 0
	}
	return utils.AngleDelta(a.Heading(), InitialBearing(a.Position(), b.Position()))
}

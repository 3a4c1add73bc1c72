package control

type fakeVehicle struct {
	heading, velocityHeading, speed, throttle float64
}

func (v *fakeVehicle) Heading() float64                { return v.heading }
func (v *fakeVehicle) VelocityHeading() float64        { return v.velocityHeading }
func (v *fakeVehicle) HorizontalSurfaceSpeed() float64 { return v.speed }
func (v *fakeVehicle) MainThrottle() float64           { return v.throttle }

func (v *fakeVehicle) TargetVessel() Vehicle { return v }
func (v *fakeVehicle) KindName() string      { return "Vessel" }

type fakeContext struct {
	id      uint32
	vehicle Vehicle
}

func (c *fakeContext) ControlPartID() uint32 { return c.id }
func (c *fakeContext) Vehicle() Vehicle      { return c.vehicle }

type fakeCoord struct{ bearing float64 }

func (c fakeCoord) Bearing() float64 { return c.bearing }
func (c fakeCoord) KindName() string { return "GeoCoordinates" }

// fakeNav returns a fixed bearing and records the vehicles it was asked about.
type fakeNav struct {
	bearing  float64
	from, to Vehicle
}

func (n *fakeNav) TargetBearing(from, to Vehicle) float64 {
	n.from, n.to = from, to
	return n.bearing
}

// fakeParam is another parameter a channel can take over from.
type fakeParam struct {
	WheelSteering
	value any
}

func (p *fakeParam) Value() any { return p.value }

func newChannel() (*WheelSteering, *fakeVehicle, *fakeContext) {
	v := &fakeVehicle{heading: 0, velocityHeading: 0, speed: 5}
	return NewWheelSteering(v, &fakeNav{}), v, &fakeContext{id: 7, vehicle: v}
}

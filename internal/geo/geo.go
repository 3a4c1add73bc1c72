// Package geo does great-circle math on a spherical body.
package geo

import (
	"fmt"
	"math"

	"go-rover-autopilot/internal/utils"
)

// LatLng is a surface position in degrees.
type LatLng struct {
	Lat, Lng float64
}

func (p LatLng) String() string {
	return fmt.Sprintf("LATLNG(%.4f, %.4f)", p.Lat, p.Lng)
}

// InitialBearing is the compass heading, in [0, 360), to fly from a towards b
// along a great circle.
func InitialBearing(a, b LatLng) float64 {
	lat1, lat2 := utils.Radians(a.Lat), utils.Radians(b.Lat)
	dLng := utils.Radians(b.Lng - a.Lng)

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	return utils.NormalizeHeading(utils.Degrees(math.Atan2(y, x)))
}

// Distance is the haversine distance between a and b on a body of the given
// radius.
func Distance(a, b LatLng, radius float64) float64 {
	lat1, lat2 := utils.Radians(a.Lat), utils.Radians(b.Lat)
	dLat := lat2 - lat1
	dLng := utils.Radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * radius * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Destination travels dist metres from p on the given compass heading.
func Destination(p LatLng, heading, dist, radius float64) LatLng {
	lat1, lng1 := utils.Radians(p.Lat), utils.Radians(p.Lng)
	brg := utils.Radians(heading)
	d := dist / radius

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(brg))
	lng2 := lng1 + math.Atan2(math.Sin(brg)*math.Sin(d)*math.Cos(lat1),
		math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))

	return LatLng{
		Lat: utils.Degrees(lat2),
		Lng: utils.NormalizeAngle(utils.Degrees(lng2)),
	}
}

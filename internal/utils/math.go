// internal/utils/math.go
package utils

import "math"

// Lerp performs plain linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle interpolates between two compass headings along the shorter arc.
func LerpAngle(from, to, t float64) float64 {
	return NormalizeHeading(from + AngleDelta(from, to)*t)
}

// NormalizeAngle maps an angle in degrees into [-180, 180]. Values already in
// range, including both ends, are returned unchanged.
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle > 180 {
		angle -= 360
	} else if angle < -180 {
		angle += 360
	}
	return angle
}

// NormalizeHeading maps an angle in degrees into [0, 360).
func NormalizeHeading(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// AngleDelta returns the signed shortest rotation from one heading to
// another, positive clockwise.
func AngleDelta(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

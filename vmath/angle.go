package vmath

import "math"

// Degree-based helpers for wheel geometry
// Screen convention: 0° points right (3 o'clock), y grows downward, so angles increase clockwise

const (
	FullTurn = 360.0
	HalfTurn = 180.0
)

// Point is a 2D coordinate in wheel units
type Point struct {
	X, Y float64
}

// --- Conversion ---

func DegToRad(deg float64) float64 { return deg * math.Pi / HalfTurn }
func RadToDeg(rad float64) float64 { return rad * HalfTurn / math.Pi }

// NormalizeDeg maps any angle into [0, 360)
func NormalizeDeg(deg float64) float64 {
	m := math.Mod(deg, FullTurn)
	if m < 0 {
		m += FullTurn
	}
	// math.Mod of a tiny negative can round back up to exactly 360
	if m >= FullTurn {
		m = 0
	}
	return m
}

// Polar returns the point at angle deg and distance r from center
func Polar(center Point, r, deg float64) Point {
	rad := DegToRad(deg)
	return Point{
		X: center.X + r*math.Cos(rad),
		Y: center.Y + r*math.Sin(rad),
	}
}

// AngleOf returns the screen angle in [0, 360) of the vector (dx, dy)
func AngleOf(dx, dy float64) float64 {
	return NormalizeDeg(RadToDeg(math.Atan2(dy, dx)))
}

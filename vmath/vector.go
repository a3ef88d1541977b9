package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the world-space vector used for positions and velocities
type Vec2 = mgl64.Vec2

// V2 builds a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Normalize2D returns the unit vector, zero-safe
// A zero vector stays zero instead of producing NaN
func Normalize2D(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// LerpVec moves a toward b by fraction t (unclamped)
func LerpVec(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// ClampVec clamps each axis independently into [min, max]
func ClampVec(v, min, max Vec2) Vec2 {
	return Vec2{Clamp(v[0], min[0], max[0]), Clamp(v[1], min[1], max[1])}
}

// Distance returns Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// DirectionTo returns the unit vector from a toward b
func DirectionTo(a, b Vec2) Vec2 {
	return Normalize2D(b.Sub(a))
}

// FromAngle returns a vector of the given length at angle radians
func FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

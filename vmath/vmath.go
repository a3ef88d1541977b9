// Package vmath holds the float math shared by the simulation: interpolation,
// clamping, circle overlap and interval-crossing detection on the stage clock
package vmath

import "math"

// Lerp returns a + (b-a)*t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// InverseLerp returns where v sits between a and b, unclamped
// Returns 0 when the range is empty
func InverseLerp(a, b, v float64) float64 {
	if b == a {
		return 0
	}
	return (v - a) / (b - a)
}

// CrossedInterval reports whether the clock moved across a multiple of period
// between prev (exclusive) and now (inclusive)
// Used for "every N seconds" triggers evaluated once per frame
func CrossedInterval(prev, now, period float64) bool {
	if period <= 0 || now <= prev {
		return false
	}
	return math.Floor(now/period) > math.Floor(prev/period)
}

// CrossedMark reports whether the clock crossed the absolute mark this frame
// Edge-triggered: true on exactly one frame for a monotonic clock
func CrossedMark(prev, now, mark float64) bool {
	return prev < mark && now >= mark
}

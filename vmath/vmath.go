package vmath

import (
	"math"
)

const TwoPi = 2 * math.Pi

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampAbs limits x to [-bound, +bound]
func ClampAbs(x, bound float64) float64 {
	return Clamp(x, -bound, bound)
}

// Lerp blends a toward b by t without clamping t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WrapAngle wraps an accumulating phase into [0, 2pi)
// Keeps long-running accumulators bounded without changing sin/cos output
func WrapAngle(phase float64) float64 {
	phase = math.Mod(phase, TwoPi)
	if phase < 0 {
		phase += TwoPi
	}
	return phase
}

// Approx reports whether a and b differ by less than eps
func Approx(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

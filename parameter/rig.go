package parameter

// Sway & Bob Tuning
const (
	// MaxSway is the per-axis safety bound (radians) on the sway rotation offset
	// A single huge look delta (e.g. focus regain after alt-tab) clamps here instead of throwing the item off screen
	MaxSway = 0.35

	// ReferenceRate calibrates smoothness semantics to "fraction closed per 1/60s tick"
	// The exponential blend uses alpha = 1 - (1-smoothness)^(dt*ReferenceRate)
	ReferenceRate = 60.0

	// SmoothnessEpsilon is the floor applied to non-positive smoothness values
	// Keeps the blend exponent well-defined without ever freezing convergence entirely
	SmoothnessEpsilon = 1e-4

	// BobLateralEnabled controls the secondary cos(phase/2) lateral bob term
	// When true the walk cycle traces a figure eight instead of a vertical line
	BobLateralEnabled = true

	// BobLateralScale is the lateral term amplitude relative to the vertical bob amount
	BobLateralScale = 0.5
)

// Default Profile Values
// Applied when a profile key has never been stored
const (
	DefaultSwayAmount = 0.6
	DefaultBobAmount  = 0.05
	DefaultBobSpeed   = 6.0
	DefaultSmoothness = 0.1
)

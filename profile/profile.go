package profile

import (
	"github.com/lixenwraith/viewrig/parameter"
	"github.com/lixenwraith/viewrig/vmath"
)

// Profile bundles the animation tuning parameters for one held item
// Records are immutable once stored; re-insertion under the same key replaces
// Out-of-range values are accepted as-is and clamped by the integrator
type Profile struct {
	// SwayAmount scales the rotational response to look delta
	SwayAmount float64

	// BobAmount scales the oscillation magnitude while moving
	BobAmount float64

	// BobSpeed is the angular frequency (rad/s) of the bob oscillation
	BobSpeed float64

	// Smoothness is the per-reference-tick blend fraction toward the target
	// Smaller converges slower; valid range (0, 1], clamped at use site
	Smoothness float64

	// Offset is the static translation in camera-local space
	Offset vmath.Vec3

	// Rotation is the static Euler rotation in camera-local space
	Rotation vmath.Vec3
}

// Default returns the fixed fallback profile used for unknown keys
func Default() Profile {
	return Profile{
		SwayAmount: parameter.DefaultSwayAmount,
		BobAmount:  parameter.DefaultBobAmount,
		BobSpeed:   parameter.DefaultBobSpeed,
		Smoothness: parameter.DefaultSmoothness,
	}
}

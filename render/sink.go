// Package render defines the display collaborator contract
// The host owns the actual camera attachment pipeline; the engine only
// hands it a model handle and a camera-local transform per frame.
package render

import (
	"github.com/lixenwraith/viewrig/asset"
	"github.com/lixenwraith/viewrig/vmath"
)

// Transform is a rigid camera-local placement
// Rotation is Euler angles in radians (X pitch, Y yaw, Z roll)
type Transform struct {
	Position vmath.Vec3
	Rotation vmath.Vec3
}

// Identity returns the rest transform
func Identity() Transform {
	return Transform{}
}

// Blend moves t toward target by alpha on both components
// alpha outside [0,1] is the caller's bug; the engine clamps before calling
func Blend(t, target Transform, alpha float64) Transform {
	return Transform{
		Position: vmath.V3Lerp(t.Position, target.Position, alpha),
		Rotation: vmath.V3Lerp(t.Rotation, target.Rotation, alpha),
	}
}

// Sink receives the animated model and its per-frame transform
// Attach parents a model under the camera, Detach removes the current one
// Calls arrive on the tick execution context only
type Sink interface {
	Attach(handle asset.Handle)
	Detach()
	SetTransform(t Transform)
}

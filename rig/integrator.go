package rig

import (
	"math"

	"github.com/lixenwraith/viewrig/event"
	"github.com/lixenwraith/viewrig/parameter"
	"github.com/lixenwraith/viewrig/profile"
	"github.com/lixenwraith/viewrig/render"
	"github.com/lixenwraith/viewrig/vmath"
)

// Integrator advances the held-item animation by one tick
// Stateless; all mutable data lives in State, all bounds in parameter
type Integrator struct{}

func NewIntegrator() *Integrator {
	return &Integrator{}
}

// Result is the outcome of one tick
type Result struct {
	// Transform is the blended output, valid only when Emitted
	Transform render.Transform

	// Emitted is false for idle ticks (no active item)
	Emitted bool

	// Footfall reports a walk-cycle footstep crossing during this tick
	Footfall bool
}

// Advance runs one read-compute-write cycle against st
// dt is elapsed seconds since the previous tick; dt <= 0 yields no change.
// dt above MaxFrameDelta is capped, so a stalled host resumes with one
// bounded catch-up step instead of replaying the whole stall.
// Never fails: extreme inputs and malformed profile values are clamped
func (g *Integrator) Advance(st *State, in event.InputSample, dt float64) Result {
	if st == nil || !st.Active() {
		return Result{}
	}

	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	p := sanitize(st.Profile)

	// Sway: recomputed fresh from the instantaneous delta each tick,
	// so it returns to center by itself once the view stops moving
	sway := vmath.Vec3{
		X: vmath.ClampAbs(in.LookDY*p.SwayAmount, parameter.MaxSway),
		Y: vmath.ClampAbs(in.LookDX*p.SwayAmount, parameter.MaxSway),
	}

	// Bob: phase advances only while moving; when stopped the bob term
	// leaves the target and the blend below walks the item back to rest
	var bob vmath.Vec3
	footfall := false
	if in.Moving {
		prev := st.BobPhase
		st.BobPhase = vmath.WrapAngle(prev + p.BobSpeed*dt)
		footfall = footfallCrossed(prev, st.BobPhase)

		bob.Y = math.Sin(st.BobPhase) * p.BobAmount
		if parameter.BobLateralEnabled {
			bob.X = math.Cos(st.BobPhase/2) * p.BobAmount * parameter.BobLateralScale
		}
	}

	target := render.Transform{
		Position: vmath.V3Add(p.Offset, bob),
		Rotation: vmath.V3Add(p.Rotation, sway),
	}

	st.Current = render.Blend(st.Current, target, BlendFactor(p.Smoothness, dt))

	return Result{
		Transform: st.Current,
		Emitted:   true,
		Footfall:  footfall,
	}
}

// BlendFactor converts smoothness and dt into a frame-rate independent
// blend fraction: 1 - (1-s)^(dt*ReferenceRate), clamped to [0,1]
// A naive fixed alpha is only correct at one tick rate; the exponent form
// makes N small ticks equal one big tick of the same total duration
func BlendFactor(smoothness, dt float64) float64 {
	s := vmath.Clamp(smoothness, parameter.SmoothnessEpsilon, 1)
	if dt <= 0 {
		return 0
	}
	return vmath.Clamp(1-math.Pow(1-s, dt*parameter.ReferenceRate), 0, 1)
}

// footfallCrossed reports whether the phase passed a footstep point
// Footfalls sit at pi and 2pi, two per walk cycle
func footfallCrossed(prev, now float64) bool {
	if now < prev {
		return true // Wrapped past 2pi
	}
	return prev < math.Pi && now >= math.Pi
}

// sanitize clamps malformed profile values instead of rejecting them,
// keeping the animation well-defined for any stored record
func sanitize(p profile.Profile) profile.Profile {
	if p.SwayAmount < 0 {
		p.SwayAmount = 0
	}
	if p.BobAmount < 0 {
		p.BobAmount = 0
	}
	if p.BobSpeed < 0 {
		p.BobSpeed = 0
	}
	p.Smoothness = vmath.Clamp(p.Smoothness, parameter.SmoothnessEpsilon, 1)
	return p
}

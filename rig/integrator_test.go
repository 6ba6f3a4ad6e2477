package rig

import (
	"math"
	"testing"

	"github.com/lixenwraith/viewrig/asset"
	"github.com/lixenwraith/viewrig/event"
	"github.com/lixenwraith/viewrig/parameter"
	"github.com/lixenwraith/viewrig/profile"
	"github.com/lixenwraith/viewrig/vmath"
)

// newActiveState builds a loaded state for integrator tests
func newActiveState(p profile.Profile) *State {
	st := NewState()
	st.SetActive("test-item", p, asset.NewStaticHandle("test-item"))
	return st
}

func still() event.InputSample {
	return event.InputSample{}
}

// TestIdleStateSkipsComputation verifies no emission without an active item
func TestIdleStateSkipsComputation(t *testing.T) {
	g := NewIntegrator()
	st := NewState()

	res := g.Advance(st, event.InputSample{LookDX: 5, Moving: true}, 0.016)
	if res.Emitted {
		t.Error("Idle tick must not emit")
	}
	if st.BobPhase != 0 || st.Current != (State{}).Current {
		t.Error("Idle tick must not mutate state")
	}

	res = g.Advance(nil, still(), 0.016)
	if res.Emitted {
		t.Error("Nil state must not emit")
	}
}

// TestZeroDtIsIdentityBlend verifies dt=0 produces no change
func TestZeroDtIsIdentityBlend(t *testing.T) {
	g := NewIntegrator()
	p := profile.Default()
	p.Offset = vmath.Vec3{X: 1, Y: 2, Z: 3}
	st := newActiveState(p)

	before := st.Current
	res := g.Advance(st, still(), 0)
	if !res.Emitted {
		t.Fatal("Active tick should emit even with dt=0")
	}
	if st.Current != before {
		t.Errorf("dt=0 changed transform: %+v -> %+v", before, st.Current)
	}

	// Negative dt is treated as zero, not as time reversal
	g.Advance(st, still(), -1)
	if st.Current != before {
		t.Error("Negative dt changed transform")
	}
}

// TestBlendFactorFrameRateIndependence verifies the core convergence property:
// total elapsed time T gives the same result whether delivered as one tick
// or split into many smaller ticks
func TestBlendFactorFrameRateIndependence(t *testing.T) {
	g := NewIntegrator()
	p := profile.Default()
	p.Offset = vmath.Vec3{X: 0.4, Y: -0.3, Z: 0.9}

	const totalTime = 0.2

	single := newActiveState(p)
	g.Advance(single, still(), totalTime)

	split := newActiveState(p)
	const steps = 40
	for i := 0; i < steps; i++ {
		g.Advance(split, still(), totalTime/steps)
	}

	if !vmath.Approx(single.Current.Position.X, split.Current.Position.X, 1e-9) ||
		!vmath.Approx(single.Current.Position.Y, split.Current.Position.Y, 1e-9) ||
		!vmath.Approx(single.Current.Position.Z, split.Current.Position.Z, 1e-9) {
		t.Errorf("Split ticks diverged from single tick: %+v vs %+v",
			split.Current.Position, single.Current.Position)
	}
}

// TestBlendFactorBounds verifies the blend fraction stays in [0,1]
func TestBlendFactorBounds(t *testing.T) {
	tests := []struct {
		name           string
		smoothness, dt float64
	}{
		{"huge_dt", 0.1, 1e6},
		{"instant", 1.0, 0.016},
		{"negative_smoothness", -5, 0.016},
		{"oversized_smoothness", 3, 0.016},
		{"zero_dt", 0.1, 0},
		{"tiny_dt", 0.1, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alpha := BlendFactor(tt.smoothness, tt.dt)
			if alpha < 0 || alpha > 1 {
				t.Errorf("BlendFactor(%v, %v) = %v, out of [0,1]", tt.smoothness, tt.dt, alpha)
			}
		})
	}
}

// TestHugeDtConvergesWithoutOvershoot verifies a stall never throws the
// transform past its target
func TestHugeDtConvergesWithoutOvershoot(t *testing.T) {
	g := NewIntegrator()
	p := profile.Default()
	p.Offset = vmath.Vec3{X: 2}
	st := newActiveState(p)

	g.Advance(st, still(), 1e9)
	if st.Current.Position.X < 0 || st.Current.Position.X > 2 {
		t.Errorf("Position overshot target: %v", st.Current.Position.X)
	}
}

// TestSwayProportionalToAmount verifies sway response scales with SwayAmount
func TestSwayProportionalToAmount(t *testing.T) {
	g := NewIntegrator()
	in := event.InputSample{LookDX: 0.1}

	// Smoothness 1 snaps to target, exposing it directly
	p := profile.Default()
	p.Smoothness = 1
	p.SwayAmount = 0.5
	st := newActiveState(p)
	g.Advance(st, in, 0.016)
	small := st.Current.Rotation.Y

	p.SwayAmount = 1.0
	st = newActiveState(p)
	g.Advance(st, in, 0.016)
	large := st.Current.Rotation.Y

	if !vmath.Approx(large, 2*small, 1e-9) {
		t.Errorf("Doubled sway amount gave %v, want %v", large, 2*small)
	}
	if !vmath.Approx(small, 0.05, 1e-9) {
		t.Errorf("Sway offset = %v, want lookDX*swayAmount = 0.05", small)
	}
}

// TestSwayClampedAtMax verifies a single huge look spike clamps at the bound
func TestSwayClampedAtMax(t *testing.T) {
	g := NewIntegrator()
	p := profile.Default()
	p.Smoothness = 1
	st := newActiveState(p)

	g.Advance(st, event.InputSample{LookDX: 1e6, LookDY: -1e6}, 0.016)

	if st.Current.Rotation.Y != parameter.MaxSway {
		t.Errorf("Yaw sway = %v, want clamp %v", st.Current.Rotation.Y, parameter.MaxSway)
	}
	if st.Current.Rotation.X != -parameter.MaxSway {
		t.Errorf("Pitch sway = %v, want clamp %v", st.Current.Rotation.X, -parameter.MaxSway)
	}
}

// TestSwayRecentersWhenLookStops verifies sway is recomputed from the
// instantaneous delta, not accumulated
func TestSwayRecentersWhenLookStops(t *testing.T) {
	g := NewIntegrator()
	p := profile.Default()
	st := newActiveState(p)

	for i := 0; i < 10; i++ {
		g.Advance(st, event.InputSample{LookDX: 0.2}, 0.016)
	}
	if st.Current.Rotation.Y == 0 {
		t.Fatal("Expected sway buildup under constant look delta")
	}

	for i := 0; i < 400; i++ {
		g.Advance(st, still(), 0.016)
	}
	if !vmath.Approx(st.Current.Rotation.Y, 0, 1e-6) {
		t.Errorf("Sway did not decay to center: %v", st.Current.Rotation.Y)
	}
}

// TestBobFullCycle verifies bobSpeed=2pi advances exactly one cycle per second
func TestBobFullCycle(t *testing.T) {
	g := NewIntegrator()
	p := profile.Default()
	p.BobSpeed = vmath.TwoPi
	st := newActiveState(p)

	moving := event.InputSample{Moving: true}
	const steps = 100
	for i := 0; i < steps; i++ {
		g.Advance(st, moving, 1.0/steps)
	}

	// Wrapped back to the start of the cycle
	wrapped := st.BobPhase
	if wrapped > math.Pi {
		wrapped -= vmath.TwoPi
	}
	if !vmath.Approx(wrapped, 0, 1e-9) {
		t.Errorf("BobPhase after one full cycle = %v, want 0", st.BobPhase)
	}
}

// TestBobPhaseHoldsWhenNotMoving verifies the phase freezes while standing
func TestBobPhaseHoldsWhenNotMoving(t *testing.T) {
	g := NewIntegrator()
	st := newActiveState(profile.Default())

	g.Advance(st, event.InputSample{Moving: true}, 0.1)
	frozen := st.BobPhase
	if frozen == 0 {
		t.Fatal("Expected phase advance while moving")
	}

	for i := 0; i < 20; i++ {
		g.Advance(st, still(), 0.1)
	}
	if st.BobPhase != frozen {
		t.Errorf("BobPhase advanced while standing: %v -> %v", frozen, st.BobPhase)
	}
}

// TestBobDecaysWithoutSnap verifies stopping mid-cycle eases the item back
// to rest instead of popping
func TestBobDecaysWithoutSnap(t *testing.T) {
	g := NewIntegrator()
	p := profile.Default()
	p.BobAmount = 0.2
	p.BobSpeed = math.Pi // Quarter cycle in 0.5s lands near peak
	st := newActiveState(p)

	moving := event.InputSample{Moving: true, Speed: 3}
	for i := 0; i < 31; i++ {
		g.Advance(st, moving, 0.016)
	}
	lifted := st.Current.Position.Y
	if math.Abs(lifted) < 0.01 {
		t.Fatalf("Expected visible bob offset, got %v", lifted)
	}

	// First still tick: moved toward rest but not snapped there
	g.Advance(st, still(), 0.016)
	after := st.Current.Position.Y
	if after == 0 {
		t.Error("Bob offset snapped to zero in one tick")
	}
	if math.Abs(after) >= math.Abs(lifted) {
		t.Errorf("Bob offset did not decay: %v -> %v", lifted, after)
	}

	// Converges to rest eventually
	for i := 0; i < 1000; i++ {
		g.Advance(st, still(), 0.016)
	}
	if !vmath.Approx(st.Current.Position.Y, 0, 1e-6) {
		t.Errorf("Bob offset never reached rest: %v", st.Current.Position.Y)
	}
}

// TestFootfallTwicePerCycle verifies footsteps land at pi and the wrap
func TestFootfallTwicePerCycle(t *testing.T) {
	g := NewIntegrator()
	p := profile.Default()
	p.BobSpeed = vmath.TwoPi
	st := newActiveState(p)

	// 1.25 cycles: crossings at pi and the wrap have definitely fired,
	// the third (pi again) has not; avoids float ties exactly at 2pi
	moving := event.InputSample{Moving: true}
	falls := 0
	for i := 0; i < 125; i++ {
		if g.Advance(st, moving, 0.01).Footfall {
			falls++
		}
	}
	if falls != 2 {
		t.Errorf("Counted %d footfalls over 1.25 cycles, want 2", falls)
	}
}

// TestMalformedProfileClamped verifies negative tuning values animate sanely
func TestMalformedProfileClamped(t *testing.T) {
	g := NewIntegrator()
	p := profile.Profile{
		SwayAmount: -3,
		BobAmount:  -1,
		BobSpeed:   -5,
		Smoothness: -0.5,
		Offset:     vmath.Vec3{X: 1},
	}
	st := newActiveState(p)

	res := g.Advance(st, event.InputSample{LookDX: 10, Moving: true}, 0.016)
	if !res.Emitted {
		t.Fatal("Malformed profile must still animate")
	}
	if st.Current.Rotation.Y != 0 {
		t.Errorf("Negative sway amount leaked through: %v", st.Current.Rotation.Y)
	}
	if st.BobPhase != 0 {
		t.Errorf("Negative bob speed advanced phase: %v", st.BobPhase)
	}
	for _, v := range []float64{st.Current.Position.X, st.Current.Position.Y, st.Current.Position.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Non-finite position: %+v", st.Current.Position)
		}
	}
}

// TestContinuityBoundedStep verifies each tick moves the transform by a
// bounded fraction of the remaining distance
func TestContinuityBoundedStep(t *testing.T) {
	g := NewIntegrator()
	p := profile.Default()
	p.Offset = vmath.Vec3{X: 10}
	st := newActiveState(p)

	prev := st.Current.Position.X
	for i := 0; i < 50; i++ {
		g.Advance(st, still(), 0.016)
		step := st.Current.Position.X - prev
		remaining := 10 - prev
		if step < 0 || step > remaining+1e-12 {
			t.Fatalf("Tick %d stepped %v with %v remaining", i, step, remaining)
		}
		prev = st.Current.Position.X
	}
}

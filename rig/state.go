// Package rig computes the camera-local transform of the held item,
// one tick at a time: sway from look delta, bob from the walk cycle,
// exponential convergence toward the assembled target.
package rig

import (
	"github.com/lixenwraith/viewrig/asset"
	"github.com/lixenwraith/viewrig/profile"
	"github.com/lixenwraith/viewrig/render"
)

// State is the single-instance mutable animation state for the active item
// All mutation happens on the tick execution context or under the engine's
// swap lock; the struct itself carries no synchronization
type State struct {
	// ActiveID is the identity of the loaded item, empty when unloaded
	ActiveID string

	// Profile is a snapshot copied from the store at load time
	// Later store edits do not affect an already-loaded item
	Profile profile.Profile

	// Handle is the loaded model reference, nil when unloaded
	Handle asset.Handle

	// Current is the last emitted transform
	// Continuity invariant: changes by a bounded step per tick, never jumps,
	// including across item switches
	Current render.Transform

	// BobPhase is the walk-cycle accumulator, wrapped to [0, 2pi)
	BobPhase float64
}

func NewState() *State {
	return &State{}
}

// Active reports whether an item is loaded
func (s *State) Active() bool {
	return s.Handle != nil
}

// SetActive swaps in a newly loaded item
// Current is deliberately left untouched so the blend carries the old
// transform toward the new target instead of teleporting
func (s *State) SetActive(id string, p profile.Profile, h asset.Handle) {
	s.ActiveID = id
	s.Profile = p
	s.Handle = h
}

// Reset returns the state to unloaded idle
func (s *State) Reset() {
	s.ActiveID = ""
	s.Profile = profile.Profile{}
	s.Handle = nil
	s.Current = render.Identity()
	s.BobPhase = 0
}

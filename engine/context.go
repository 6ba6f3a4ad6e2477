// Package engine orchestrates the held-item animation: it owns the
// single-instance motion state, applies item switches atomically with
// respect to ticks, and drives the integrator once per rendered frame.
package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/viewrig/asset"
	"github.com/lixenwraith/viewrig/event"
	"github.com/lixenwraith/viewrig/profile"
	"github.com/lixenwraith/viewrig/render"
	"github.com/lixenwraith/viewrig/rig"
)

// CuePlayer receives animation cue callbacks (footsteps)
// Calls are fire-and-forget and happen outside the tick lock
type CuePlayer interface {
	Footstep()
}

// Context holds all rig state and collaborators
// Single instance, explicitly owned by the Controller; no ambient globals
type Context struct {
	Profiles   *profile.Store
	State      *rig.State
	Integrator *rig.Integrator
	Resolver   asset.Resolver
	Sink       render.Sink
	Queue      *event.Queue
	Time       TimeProvider
	Cues       CuePlayer // Optional, nil disables cues

	// DefaultItem is resolved when Load gets an empty identity
	DefaultItem string

	// mu serializes the tick's read-compute-write sequence against item
	// swaps, so a tick observes either the fully-old or fully-new
	// (id, profile, handle) triple, never a mix
	mu sync.Mutex

	running atomic.Bool
	loadGen atomic.Uint64

	// lastInput carries movement state across ticks without fresh samples
	// Guarded by mu
	lastInput event.InputSample
}

// NewContext wires a context around the given collaborators
// The profile store is pre-populated from the environment
func NewContext(resolver asset.Resolver, sink render.Sink) *Context {
	return &Context{
		Profiles:    profile.LoadStore(),
		State:       rig.NewState(),
		Integrator:  rig.NewIntegrator(),
		Resolver:    resolver,
		Sink:        sink,
		Queue:       event.NewQueue(),
		Time:        NewMonotonicTimeProvider(),
		DefaultItem: profile.DefaultItem(),
	}
}

// Running reports whether per-frame updates are enabled
func (c *Context) Running() bool {
	return c.running.Load()
}

// SubmitInput queues one input reading for the next tick
// Safe from any goroutine
func (c *Context) SubmitInput(sample event.InputSample) {
	event.EmitInput(c.Queue, sample)
}

// Step advances the animation by dt seconds and forwards the result to
// the sink. This is the per-frame entry point; hosts call it from their
// render loop, or the internal Loop calls it on a ticker
func (c *Context) Step(dt float64) {
	if !c.running.Load() {
		return
	}

	pending := c.Queue.Consume()

	c.mu.Lock()
	sample := event.CoalesceInput(pending, c.lastInput)
	c.lastInput = sample

	res := c.Integrator.Advance(c.State, sample, dt)
	if res.Emitted {
		c.Sink.SetTransform(res.Transform)
	}
	c.mu.Unlock()

	if res.Footfall && c.Cues != nil {
		c.Cues.Footstep()
	}
}

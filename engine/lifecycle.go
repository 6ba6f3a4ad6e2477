package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/viewrig/asset"
	"github.com/lixenwraith/viewrig/event"
	"github.com/lixenwraith/viewrig/profile"
	"github.com/lixenwraith/viewrig/render"
)

// Controller is the public lifecycle surface of the rig
// Setup wires the context, Start/Stop gate per-frame updates, Load/Unload
// switch items, AddSettings edits tuning profiles
type Controller struct {
	resolver asset.Resolver
	sink     render.Sink
	cues     CuePlayer

	mu         sync.Mutex
	ctx        *Context
	transition *Transition
	loop       *Loop
}

// NewController creates an unwired controller around the collaborators
// Call Setup (or any operation, which sets up implicitly) before use
func NewController(resolver asset.Resolver, sink render.Sink) *Controller {
	return &Controller{
		resolver: resolver,
		sink:     sink,
	}
}

// WithCues attaches an optional cue player (footstep audio)
// Must be called before Setup takes effect
func (c *Controller) WithCues(cues CuePlayer) *Controller {
	c.cues = cues
	return c
}

// WithLoop enables the internal ticker so the host does not need to call
// Step; interval <= 0 falls back to the default frame interval
func (c *Controller) WithLoop(interval time.Duration) *Controller {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureSetupLocked()
	c.loop = NewLoop(c.ctx, interval)
	return c
}

// Setup initializes the context; repeated calls are a no-op
func (c *Controller) Setup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureSetupLocked()
}

func (c *Controller) ensureSetupLocked() {
	if c.ctx != nil {
		return
	}
	c.ctx = NewContext(c.resolver, c.sink)
	c.ctx.Cues = c.cues
	c.transition = NewTransition(c.ctx)
}

// Start enables per-frame updates, loading the default item first if
// nothing is active. A Start after Stop resumes with the same item and
// does not resolve again
func (c *Controller) Start() error {
	c.mu.Lock()
	c.ensureSetupLocked()
	ctx, transition, loop := c.ctx, c.transition, c.loop
	c.mu.Unlock()

	if !c.Active() {
		if err := transition.Load(""); err != nil {
			return err
		}
	}

	ctx.running.Store(true)
	if loop != nil {
		loop.Start()
	}
	return nil
}

// Stop disables per-frame updates without unloading the active item
func (c *Controller) Stop() {
	c.mu.Lock()
	c.ensureSetupLocked()
	ctx, loop := c.ctx, c.loop
	c.mu.Unlock()

	ctx.running.Store(false)
	if loop != nil {
		loop.Stop()
	}
}

// Load switches to the item with the given identity
// Empty identity loads the configured default
func (c *Controller) Load(identity string) error {
	c.mu.Lock()
	c.ensureSetupLocked()
	transition := c.transition
	c.mu.Unlock()
	return transition.Load(identity)
}

// Unload detaches and releases the active item; idempotent
func (c *Controller) Unload() {
	c.mu.Lock()
	c.ensureSetupLocked()
	transition := c.transition
	c.mu.Unlock()
	transition.Unload()
}

// AddSettings stores a tuning profile under the item identity
// Takes effect at the item's next load, not retroactively
func (c *Controller) AddSettings(identity string, p profile.Profile) {
	c.mu.Lock()
	c.ensureSetupLocked()
	ctx := c.ctx
	c.mu.Unlock()
	ctx.Profiles.Put(identity, p)
}

// SubmitInput queues one input reading for the next tick
func (c *Controller) SubmitInput(sample event.InputSample) {
	c.mu.Lock()
	c.ensureSetupLocked()
	ctx := c.ctx
	c.mu.Unlock()
	ctx.SubmitInput(sample)
}

// Step advances the animation by dt seconds (host-driven frame clock)
func (c *Controller) Step(dt float64) {
	c.mu.Lock()
	c.ensureSetupLocked()
	ctx := c.ctx
	c.mu.Unlock()
	ctx.Step(dt)
}

// Active reports whether an item is currently loaded
func (c *Controller) Active() bool {
	c.mu.Lock()
	c.ensureSetupLocked()
	ctx := c.ctx
	c.mu.Unlock()

	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return ctx.State.Active()
}

// ActiveItem returns the loaded item identity, empty when unloaded
func (c *Controller) ActiveItem() string {
	c.mu.Lock()
	c.ensureSetupLocked()
	ctx := c.ctx
	c.mu.Unlock()

	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return ctx.State.ActiveID
}

// Context exposes the wired context for embedding hosts and tests
func (c *Controller) Context() *Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureSetupLocked()
	return c.ctx
}

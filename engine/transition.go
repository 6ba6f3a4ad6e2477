package engine

import (
	"fmt"
)

// Transition swaps the active item in and out
// Swap ordering choice: detach precedes attach, both inside one locked
// section, so no tick ever observes a half-swapped state or zero handles.
// The old handle is released only after the swap has fully succeeded
type Transition struct {
	ctx *Context
}

func NewTransition(ctx *Context) *Transition {
	return &Transition{ctx: ctx}
}

// Load resolves identity (empty means the configured default) and makes it
// the active item. All-or-nothing: on resolution failure the previously
// active item stays active and untouched, and the error wraps
// asset.ErrNotFound when the identity is unknown.
//
// Concurrent and superseding calls are safe: each Load takes a generation
// number before resolving, and only the most recent generation may apply
// its result. A superseded load releases its handle without attaching it
func (t *Transition) Load(identity string) error {
	id := identity
	if id == "" {
		id = t.ctx.DefaultItem
	}

	gen := t.ctx.loadGen.Add(1)

	// Resolution may block; the previous item keeps animating meanwhile
	handle, err := t.ctx.Resolver.Resolve(id)
	if err != nil {
		return fmt.Errorf("load %q: %w", id, err)
	}

	t.ctx.mu.Lock()
	if gen != t.ctx.loadGen.Load() {
		// A newer request won while this one was resolving
		t.ctx.mu.Unlock()
		handle.Release()
		return nil
	}

	prof := t.ctx.Profiles.Get(id)
	old := t.ctx.State.Handle

	if old != nil {
		t.ctx.Sink.Detach()
	}
	t.ctx.Sink.Attach(handle)
	t.ctx.State.SetActive(id, prof, handle)
	t.ctx.mu.Unlock()

	if old != nil {
		old.Release()
	}
	return nil
}

// Unload detaches and releases the active item
// Idempotent: with nothing loaded it is a no-op, not an error
func (t *Transition) Unload() {
	// Invalidate any in-flight load so a late resolution cannot re-attach
	t.ctx.loadGen.Add(1)

	t.ctx.mu.Lock()
	if !t.ctx.State.Active() {
		t.ctx.mu.Unlock()
		return
	}

	old := t.ctx.State.Handle
	t.ctx.Sink.Detach()
	t.ctx.State.Reset()
	t.ctx.mu.Unlock()

	old.Release()
}

package engine

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/viewrig/asset"
	"github.com/lixenwraith/viewrig/render"
)

// MockHandle records release calls for leak assertions
type MockHandle struct {
	name     string
	released atomic.Int32
}

func (h *MockHandle) Name() string { return h.name }

func (h *MockHandle) Release() { h.released.Add(1) }

func (h *MockHandle) Released() int { return int(h.released.Load()) }

// MockResolver is a controllable asset resolver
// Identities passed to NewMockResolver resolve; others fail with ErrNotFound.
// GateIdentity makes one identity block until the returned channel is closed,
// signalling entry on Entered, which lets tests interleave in-flight loads
type MockResolver struct {
	mu      sync.Mutex
	known   map[string]bool
	created map[string][]*MockHandle
	gates   map[string]chan struct{}
	entered chan string
	count   atomic.Int32
}

func NewMockResolver(names ...string) *MockResolver {
	r := &MockResolver{
		known:   make(map[string]bool),
		created: make(map[string][]*MockHandle),
		gates:   make(map[string]chan struct{}),
		entered: make(chan string, 8),
	}
	for _, name := range names {
		r.known[name] = true
	}
	return r
}

// GateIdentity blocks future resolves of name until the channel is closed
func (r *MockResolver) GateIdentity(name string) chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	gate := make(chan struct{})
	r.gates[name] = gate
	return gate
}

// Entered signals identities whose gated resolution has started
func (r *MockResolver) Entered() <-chan string {
	return r.entered
}

// ResolveCount returns the total number of Resolve calls
func (r *MockResolver) ResolveCount() int {
	return int(r.count.Load())
}

// Created returns every handle handed out for name, in order
func (r *MockResolver) Created(name string) []*MockHandle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*MockHandle(nil), r.created[name]...)
}

func (r *MockResolver) Resolve(identity string) (asset.Handle, error) {
	r.count.Add(1)

	r.mu.Lock()
	known := r.known[identity]
	gate := r.gates[identity]
	r.mu.Unlock()

	if gate != nil {
		r.entered <- identity
		<-gate
	}

	if !known {
		return nil, fmt.Errorf("resolve %q: %w", identity, asset.ErrNotFound)
	}

	h := &MockHandle{name: identity}
	r.mu.Lock()
	r.created[identity] = append(r.created[identity], h)
	r.mu.Unlock()
	return h, nil
}

// MockSink records the call sequence the engine makes against it
type MockSink struct {
	mu         sync.Mutex
	calls      []string
	transforms []render.Transform
}

func NewMockSink() *MockSink {
	return &MockSink{}
}

func (m *MockSink) Attach(handle asset.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "attach:"+handle.Name())
}

func (m *MockSink) Detach() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "detach")
}

func (m *MockSink) SetTransform(t render.Transform) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transforms = append(m.transforms, t)
}

// Calls returns attach/detach history in order (transforms excluded)
func (m *MockSink) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Transforms returns every emitted transform in order
func (m *MockSink) Transforms() []render.Transform {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]render.Transform(nil), m.transforms...)
}

// MockCues counts footstep callbacks
type MockCues struct {
	steps atomic.Int32
}

func (m *MockCues) Footstep() { m.steps.Add(1) }

func (m *MockCues) Steps() int { return int(m.steps.Load()) }

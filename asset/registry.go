package asset

import (
	"fmt"
	"sync"
)

// HandleFactory creates a fresh handle for one registered model
type HandleFactory func() Handle

var (
	modelsMu sync.RWMutex
	models   = make(map[string]HandleFactory)
)

// RegisterModel adds a model factory by identity
// Later registrations under the same identity replace earlier ones
func RegisterModel(identity string, factory HandleFactory) {
	modelsMu.Lock()
	defer modelsMu.Unlock()
	models[identity] = factory
}

// ModelNames returns all registered model identities
func ModelNames() []string {
	modelsMu.RLock()
	defer modelsMu.RUnlock()
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	return names
}

// RegistryResolver resolves identities against the process-wide model registry
// Used by hosts that register their models up front (the demo does)
type RegistryResolver struct{}

func (RegistryResolver) Resolve(identity string) (Handle, error) {
	modelsMu.RLock()
	factory, ok := models[identity]
	modelsMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", identity, ErrNotFound)
	}
	return factory(), nil
}

// StaticHandle is a minimal Handle for registry entries without resources to free
type StaticHandle struct {
	name string
}

func NewStaticHandle(name string) *StaticHandle {
	return &StaticHandle{name: name}
}

func (h *StaticHandle) Name() string { return h.name }

func (h *StaticHandle) Release() {}

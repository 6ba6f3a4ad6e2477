// Package asset defines the model loading collaborator contract
// The engine never loads files itself; it asks a Resolver for a handle
// and releases the handle when the item is swapped out or unloaded.
package asset

import (
	"errors"
)

// ErrNotFound reports an identity the resolver cannot satisfy
// Load surfaces it wrapped; existing state stays untouched
var ErrNotFound = errors.New("asset not found")

// Handle is an opaque reference to a loaded item model
// Release must be safe to call exactly once per acquisition
type Handle interface {
	Name() string
	Release()
}

// Resolver turns an item identity into a loadable model handle
// Resolution may block; the engine keeps animating the previous item
// until the result is applied at a tick boundary
type Resolver interface {
	Resolve(identity string) (Handle, error)
}

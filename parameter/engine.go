package parameter

import "time"

// Engine Timing
const (
	// FrameUpdateInterval is the internal loop tick interval (~60 FPS)
	// Hosts that drive Step themselves ignore this
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt fed into the integrator (seconds)
	// A stalled host delivers one large delta; the blend clamps anyway, this keeps bob phase advance bounded too
	MaxFrameDelta = 0.25
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the input event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// DefaultItem is the identity loaded by Start when nothing is active
// and Load is called with an empty identity, unless overridden via env
const DefaultItem = "hands"

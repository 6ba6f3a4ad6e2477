package event

// Type identifies the kind of rig event
type Type int

const (
	// TypeInputSample carries one per-tick input reading
	// Trigger: input device wiring (host) | Consumer: tick boundary | Payload: InputSample
	// Footfall cues do not travel through the queue; they go straight to the
	// cue player callback on the tick that detects them
	TypeInputSample Type = iota
)

// InputSample is one reading from the input collaborator
// Look deltas are instantaneous (change since last sample), not accumulated
type InputSample struct {
	LookDX float64 // Yaw change
	LookDY float64 // Pitch change
	Moving bool
	Speed  float64
}

// Event is the queue element consumed at tick boundaries
type Event struct {
	Type   Type
	Sample InputSample
}

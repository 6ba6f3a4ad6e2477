package event

// EmitInput pushes one input reading onto the queue
// Producers may call from any goroutine; the tick loop coalesces pending
// samples at the next boundary
func EmitInput(q *Queue, sample InputSample) {
	q.Push(Event{
		Type:   TypeInputSample,
		Sample: sample,
	})
}

// CoalesceInput folds pending events into a single per-tick sample
// Look deltas sum (they are instantaneous changes); movement flags take the
// most recent value. With no pending samples the previous movement state is
// kept and the look delta is zero
func CoalesceInput(events []Event, previous InputSample) InputSample {
	out := InputSample{
		Moving: previous.Moving,
		Speed:  previous.Speed,
	}
	for _, ev := range events {
		if ev.Type != TypeInputSample {
			continue
		}
		out.LookDX += ev.Sample.LookDX
		out.LookDY += ev.Sample.LookDY
		out.Moving = ev.Sample.Moving
		out.Speed = ev.Sample.Speed
	}
	return out
}

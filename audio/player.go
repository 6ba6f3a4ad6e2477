// Package audio plays footstep cues timed by the walk-cycle footfalls
// the integrator reports. Playback failures are non-fatal; the rig runs
// silently without a working speaker.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	footstepFreq     = 196.0 // Low thud
	footstepDuration = 45 * time.Millisecond
)

// Player synthesizes short footstep tones through the speaker
// Implements the engine's CuePlayer contract
type Player struct {
	cfg   *Config
	ready bool
}

func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{cfg: cfg}
}

// Init opens the speaker; with audio disabled it is a silent no-op
func (p *Player) Init() error {
	if !p.cfg.Enabled {
		return nil
	}

	sampleRate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.ready = true
	return nil
}

// Footstep plays one footfall cue; dropped silently when not initialized
func (p *Player) Footstep() {
	if !p.ready {
		return
	}

	sampleRate := beep.SampleRate(p.cfg.SampleRate)
	sine, err := generators.SineTone(sampleRate, footstepFreq)
	if err != nil {
		return
	}

	tone := beep.Take(sampleRate.N(footstepDuration), sine)
	speaker.Play(&effects.Gain{
		Streamer: tone,
		Gain:     p.cfg.MasterVolume - 1, // Gain scales by 1+Gain
	})
}

// Close shuts the speaker down
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}

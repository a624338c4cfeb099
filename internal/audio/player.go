// Package audio plays the game's sound cues: flap, score, hit, and a
// looping background track. Everything is synthesized; no asset files.
//
// Playback is strictly best-effort. If the speaker cannot be opened the
// player runs in silent mode and every call is a no-op; failures never
// reach the game loop.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player manages all game audio through a single mixer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loop        *beep.Ctrl
	initialized bool
	muted       bool
	inRun       bool // Whether a run is active; gates loop resume on unmute
}

// NewPlayer creates a player. Call Init before use; without it the
// player stays in silent mode.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and attaches the mixer. The returned error is
// informational only: the player works (silently) either way.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything and detaches from the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if p.loop != nil {
		p.loop.Paused = true
	}
	p.mixer.Clear()
	p.initialized = false
}

// PlayFlap plays the impulse cue.
func (p *Player) PlayFlap() {
	p.oneShot(newFlapTone(sampleRate), time.Millisecond*90)
}

// PlayScore plays the scoring cue.
func (p *Player) PlayScore() {
	p.oneShot(newScoreTone(sampleRate), time.Millisecond*160)
}

// PlayHit plays the collision cue.
func (p *Player) PlayHit() {
	p.oneShot(newHitTone(sampleRate), time.Millisecond*300)
}

// oneShot mixes in a cue clipped to the given duration.
// Suppressed while muted or in silent mode.
func (p *Player) oneShot(s beep.Streamer, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	p.mixer.Add(beep.Take(sampleRate.N(d), s))
}

// StartLoop begins (or resumes) the background track for a run.
// While muted the loop stays paused but the run is remembered, so
// unmuting resumes it.
func (p *Player) StartLoop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.inRun = true
	if !p.initialized {
		return
	}

	if p.loop == nil {
		p.loop = &beep.Ctrl{Streamer: newLoopTrack(sampleRate)}
		p.mixer.Add(p.loop)
	}
	p.loop.Paused = p.muted
}

// StopLoop pauses the background track when a run ends.
func (p *Player) StopLoop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.inRun = false
	if p.loop != nil {
		p.loop.Paused = true
	}
}

// ToggleMute flips the mute state and returns the new value.
// Muting pauses the loop immediately; unmuting resumes it only if a run
// is currently active.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	if p.loop != nil {
		if p.muted {
			p.loop.Paused = true
		} else if p.inRun {
			p.loop.Paused = false
		}
	}
	return p.muted
}

// SetMuted sets the mute state directly (from config or a CLI flag).
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	if p.loop != nil {
		if muted {
			p.loop.Paused = true
		} else if p.inRun {
			p.loop.Paused = false
		}
	}
}

// Muted returns the current mute state.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

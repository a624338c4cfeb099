package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

// Pipe is a vertical obstacle pair with a gap for the bird to pass through.
type Pipe struct {
	X      float64 // Left edge in logical units
	GapTop float64 // Height of the top segment = y where the gap starts
	Passed bool    // Whether this pipe has been credited for scoring
}

// Pipes handles spawning, movement, scoring, and removal of pipes.
// Insertion order is spawn order is left-to-right screen order.
type Pipes struct {
	pipes     []Pipe
	rng       *rand.Rand
	cfg       config.PipeConfig
	surface   config.SurfaceConfig
	lastSpawn time.Time
}

// NewPipes creates a pipe manager with the given RNG seed.
func NewPipes(seed int64, cfg config.PipeConfig, surface config.SurfaceConfig) *Pipes {
	return &Pipes{
		pipes:   make([]Pipe, 0, 8),
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
		surface: surface,
	}
}

// Reset clears all pipes and resets the spawn timer to now.
func (pm *Pipes) Reset(now time.Time) {
	pm.pipes = pm.pipes[:0]
	pm.lastSpawn = now
}

// Reseed replaces the RNG stream.
func (pm *Pipes) Reseed(seed int64) {
	pm.rng = rand.New(rand.NewSource(seed))
}

// MaybeSpawn appends one pipe at the right edge of the surface if the
// spawn interval has elapsed, and updates the last-spawn timestamp.
// This is the only source of randomness in the game.
func (pm *Pipes) MaybeSpawn(now time.Time) {
	interval := time.Duration(pm.cfg.SpawnIntervalMS) * time.Millisecond
	if now.Sub(pm.lastSpawn) < interval {
		return
	}
	pm.lastSpawn = now

	// The gap top is uniform over the range that leaves both segments at
	// least MinSegment tall.
	min := pm.cfg.MinSegment
	max := pm.surface.Height - pm.cfg.Gap - pm.cfg.MinSegment
	gapTop := min
	if max > min {
		gapTop = min + pm.rng.Float64()*(max-min)
	}

	pm.pipes = append(pm.pipes, Pipe{
		X:      pm.surface.Width,
		GapTop: gapTop,
	})
}

// Advance moves every pipe left by the scroll speed, credits newly passed
// pipes, and prunes the ones fully off the left edge. It returns the number
// of pipes passed this tick.
//
// A pipe is passed the first tick its right edge crosses the bird's fixed
// horizontal position; the flag flips false to true exactly once.
func (pm *Pipes) Advance(birdX float64) int {
	passed := 0

	for i := range pm.pipes {
		pm.pipes[i].X -= pm.cfg.Speed
	}

	for i := range pm.pipes {
		if !pm.pipes[i].Passed && pm.pipes[i].X+pm.cfg.Width < birdX {
			pm.pipes[i].Passed = true
			passed++
		}
	}

	// Order-preserving filter
	valid := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X > -pm.cfg.Width {
			valid = append(valid, p)
		}
	}
	pm.pipes = valid

	return passed
}

// All returns the current pipes in spawn order.
func (pm *Pipes) All() []Pipe {
	return pm.pipes
}

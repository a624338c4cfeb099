// Package game implements the Flappy Bird simulation: one falling bird,
// a stream of scrolling gap obstacles, and an idle / playing / game-over
// state machine driven one tick at a time by the platform layer.
package game

import (
	"time"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// ID is the identifier used for CLI commands and score storage.
const ID = "flappy"

// Title is the human-readable game name.
const Title = "Flappy Bird"

// Game holds the whole simulation state. It is pure logic: no terminal,
// no audio, no storage. The platform maps input to actions, calls Step
// once per tick while playing, and dispatches the returned events.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig

	phase  core.Phase
	paused bool

	bird  Bird
	pipes *Pipes

	score int
	high  int // Session high score; never decreases

	now func() time.Time
}

// New creates a game with the given configuration.
func New(cfg config.Config) *Game {
	return &Game{
		cfg: cfg,
		now: time.Now,
	}
}

// SetClock replaces the wall clock used by the spawner. Tests inject a
// fake clock to drive spawn timing deterministically.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// Init prepares the game for a session: seeds the RNG, sizes the screen,
// and enters the idle phase. The session high score is reset.
func (g *Game) Init(rt core.RuntimeConfig) {
	g.runtime = rt
	g.phase = core.PhaseIdle
	g.paused = false
	g.score = 0
	g.high = 0

	if g.pipes == nil {
		g.pipes = NewPipes(rt.Seed, g.cfg.Pipes, g.cfg.Surface)
	} else {
		g.pipes.Reseed(rt.Seed)
	}
	g.resetRun()
}

// Resize updates the terminal dimensions used by Render.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// resetRun restores the per-run state: bird at the vertical center with no
// velocity or tilt, no pipes, spawn timer at now, score at zero.
func (g *Game) resetRun() {
	g.bird = Bird{Y: g.cfg.Surface.Height/2 - g.cfg.Bird.Height/2}
	g.pipes.Reset(g.now())
	g.score = 0
	g.paused = false
}

// start begins a run from idle or game over.
func (g *Game) start() {
	g.resetRun()
	g.phase = core.PhasePlaying
}

// Step advances the game by one tick. Within a tick the order is strictly:
// input impulse, gravity integration, spawn check, scroll/score/prune,
// collision. On collision the phase flips to game over and the high score
// is updated from the score as it stands after this tick's scoring pass.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.phase {
	case core.PhaseIdle:
		if in.Has(core.ActionStart) {
			g.start()
		}
		return core.StepResult{State: g.State()}

	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFlap) {
		g.bird.Impulse(g.cfg.Physics.Impulse)
		events = append(events, core.EventFlap)
	}

	g.bird.Fall(g.cfg.Physics.Gravity)
	g.bird.Lean(g.cfg.Physics.TiltScale, g.cfg.Physics.TiltEase)

	g.pipes.MaybeSpawn(g.now())

	passed := g.pipes.Advance(g.cfg.Bird.X)
	g.score += passed
	for i := 0; i < passed; i++ {
		events = append(events, core.EventScore)
	}

	if Collides(g.birdBox(), g.cfg.Bird.Margin, g.pipes.All(),
		g.cfg.Pipes.Width, g.cfg.Pipes.Gap, g.cfg.Surface.Height) {
		g.phase = core.PhaseGameOver
		if g.score > g.high {
			g.high = g.score
		}
		events = append(events, core.EventHit)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// birdBox returns the bird's unshrunk bounding box.
func (g *Game) birdBox() core.Box {
	return core.NewBox(g.cfg.Bird.X, g.bird.Y, g.cfg.Bird.Width, g.cfg.Bird.Height)
}

// State returns the externally visible game state.
func (g *Game) State() core.Snapshot {
	return core.Snapshot{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.high,
		Paused:    g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

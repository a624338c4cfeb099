package core

// Phase is the coarse game state. Exactly one phase is active at a time
// and it gates both simulation activity and overlay presentation.
type Phase int

const (
	PhaseIdle     Phase = iota // Start prompt shown, simulation inactive
	PhasePlaying               // Tick chain active, input accepted
	PhaseGameOver              // Final score shown, simulation inactive
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event is an audio-relevant occurrence reported out of a simulation tick.
// The simulation never plays sound itself; the platform dispatches these
// to the cue player.
type Event int

const (
	EventFlap  Event = iota // Impulse accepted
	EventScore              // Pipe cleared
	EventHit                // Collision ended the run
)

// Snapshot is the externally visible game state after a tick.
type Snapshot struct {
	Phase     Phase
	Score     int
	HighScore int
	Paused    bool
}

// StepResult is returned by the simulation after each tick.
type StepResult struct {
	State  Snapshot
	Events []Event
}

// RuntimeConfig is passed to the simulation at reset time.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

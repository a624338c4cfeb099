// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// Config contains all tunables for the game. The simulation runs on a
// fixed logical surface; every value here is in logical units per tick
// unless noted otherwise.
type Config struct {
	Surface SurfaceConfig `yaml:"surface"`
	Physics PhysicsConfig `yaml:"physics"`
	Pipes   PipeConfig    `yaml:"pipes"`
	Bird    BirdConfig    `yaml:"bird"`
	Audio   AudioConfig   `yaml:"audio"`
}

// SurfaceConfig defines the logical drawing surface.
// Origin is top-left, y increases downward.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines bird physics parameters.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Velocity gained per tick
	Impulse   float64 `yaml:"impulse"`    // Velocity assigned on flap (negative = up)
	TiltScale float64 `yaml:"tilt_scale"` // Tilt target per unit of velocity
	TiltEase  float64 `yaml:"tilt_ease"`  // Exponential smoothing factor, (0, 1]
}

// PipeConfig defines obstacle parameters.
type PipeConfig struct {
	Width           float64 `yaml:"width"`
	Gap             float64 `yaml:"gap"`         // Fixed vertical opening size
	MinSegment      float64 `yaml:"min_segment"` // Minimum top/bottom segment height
	Speed           float64 `yaml:"speed"`       // Leftward movement per tick
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// BirdConfig defines bird geometry.
type BirdConfig struct {
	X      float64 `yaml:"x"` // Fixed horizontal position
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // Collision box inset on all sides
}

// AudioConfig defines audio behavior.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyPreset is a named difficulty level applied at load time.
// Presets adjust constants before a run starts; nothing changes mid-run.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the gap and spawn cadence for a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Pipes.Gap = 200
		cfg.Pipes.SpawnIntervalMS = 1800
	case DifficultyNormal:
		// Defaults are the normal game.
	case DifficultyHard:
		cfg.Pipes.Gap = 140
		cfg.Pipes.SpawnIntervalMS = 1200
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the classic 400x600 game.
func Default() Config {
	return Config{
		Surface: SurfaceConfig{
			Width:  400,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:   0.4,
			Impulse:   -8.0,
			TiltScale: 3.0,
			TiltEase:  0.1,
		},
		Pipes: PipeConfig{
			Width:           60,
			Gap:             170,
			MinSegment:      50,
			Speed:           2.5,
			SpawnIntervalMS: 1500,
		},
		Bird: BirdConfig{
			X:      50,
			Width:  40,
			Height: 30,
			Margin: 5,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `config dump`-style use.
func DefaultYAML() []byte {
	return defaultYAML
}

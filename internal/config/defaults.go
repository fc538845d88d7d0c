package config

import (
	_ "embed"
)

//go:embed defaults/bomber.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It matches defaults/bomber.yaml.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows: 13,
			Cols: 15,
		},
		Timing: TimingConfig{
			FrameRate: 30,
			TickRatio: 15,
		},
		Player: PlayerConfig{
			BombCapacity: 1,
		},
		Explosion: ExplosionConfig{
			PickupChance: 0.1,
		},
		Generator: GeneratorConfig{
			StoneDensity: 0.4,
			Monsters:     3,
		},
		Source: "embedded",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for the bomber arena.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the game.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Timing    TimingConfig    `yaml:"timing"`
	Player    PlayerConfig    `yaml:"player"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Generator GeneratorConfig `yaml:"generator"`

	// Source names where the config was loaded from: a file path or "embedded".
	Source string `yaml:"-"`
}

// GridConfig defines the size of generated arenas.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the frame rate and the frame/tick cadence.
type TimingConfig struct {
	FrameRate int `yaml:"frame_rate"` // Frames per second
	TickRatio int `yaml:"tick_ratio"` // Frames per simulation step
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	BombCapacity int `yaml:"bomb_capacity"`
}

// ExplosionConfig defines blast parameters.
type ExplosionConfig struct {
	PickupChance float64 `yaml:"pickup_chance"` // 0.0 to 1.0
}

// GeneratorConfig defines parameters of the arena generator.
type GeneratorConfig struct {
	StoneDensity float64 `yaml:"stone_density"` // 0.0 to 1.0
	Monsters     int     `yaml:"monsters"`
}

// FramePeriod returns the time between two frames.
func (c Config) FramePeriod() time.Duration {
	if c.Timing.FrameRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.Timing.FrameRate)
}

// Validate checks that every setting is in range.
func (c Config) Validate() error {
	switch {
	case c.Grid.Rows < 3 || c.Grid.Cols < 3:
		return fmt.Errorf("%w: grid must be at least 3x3, got %dx%d", ErrInvalid, c.Grid.Rows, c.Grid.Cols)
	case c.Timing.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalid, c.Timing.FrameRate)
	case c.Timing.TickRatio <= 0:
		return fmt.Errorf("%w: tick_ratio must be positive, got %d", ErrInvalid, c.Timing.TickRatio)
	case c.Player.BombCapacity < 0:
		return fmt.Errorf("%w: bomb_capacity must not be negative, got %d", ErrInvalid, c.Player.BombCapacity)
	case c.Explosion.PickupChance < 0 || c.Explosion.PickupChance > 1:
		return fmt.Errorf("%w: pickup_chance must be within [0, 1], got %g", ErrInvalid, c.Explosion.PickupChance)
	case c.Generator.StoneDensity < 0 || c.Generator.StoneDensity > 1:
		return fmt.Errorf("%w: stone_density must be within [0, 1], got %g", ErrInvalid, c.Generator.StoneDensity)
	case c.Generator.Monsters < 0:
		return fmt.Errorf("%w: monsters must not be negative, got %d", ErrInvalid, c.Generator.Monsters)
	}
	return nil
}

package config

import (
	"fmt"
	"slices"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// PresetNames returns the preset names joined for help and error text.
func PresetNames() string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// ParsePreset converts a flag value to a preset.
// An empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(s)
	if p == "" || slices.Contains(Presets, p) {
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (%s)", ErrInvalid, s, PresetNames())
}

// TickRatioForPreset returns the frames per simulation step of a preset.
// Fewer frames per step means faster bombs and monsters.
func TickRatioForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 20
	case DifficultyHard:
		return 10
	default:
		return 15
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Timing.TickRatio = TickRatioForPreset(preset)
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs and
// clears the override variables.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	for _, name := range []string{EnvFrameRate, EnvTickRatio, EnvBombCapacity, EnvPickupChance} {
		t.Setenv(name, "")
	}
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected %+v", cfg, Default())
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "bomber.yaml"), "timing:\n  tick_ratio: 12\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timing.TickRatio != 12 {
		t.Errorf("local config: TickRatio = %d, expected 12", cfg.Timing.TickRatio)
	}
	if cfg.Timing.FrameRate != 30 {
		t.Errorf("unset keys should keep defaults, FrameRate = %d", cfg.Timing.FrameRate)
	}

	userPath := filepath.Join(home, ".bomber", "configs", "bomber.yaml")
	writeFile(t, userPath, "timing:\n  tick_ratio: 8\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timing.TickRatio != 8 || cfg.Source != userPath {
		t.Errorf("user config should win: TickRatio = %d, Source = %q", cfg.Timing.TickRatio, cfg.Source)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "player:\n  bomb_capacity: 4\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) error = %v", err)
	}
	if cfg.Player.BombCapacity != 4 || cfg.Timing.TickRatio != 15 {
		t.Errorf("custom config: BombCapacity = %d, TickRatio = %d", cfg.Player.BombCapacity, cfg.Timing.TickRatio)
	}
}

func TestLoadMalformedFallsThrough(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".bomber", "configs", "bomber.yaml"), "timing: [oops\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected the embedded default", cfg.Source)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := Load(filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "grid: {rows: nope}\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load() of a malformed custom file should fail")
	}

	invalid := filepath.Join(work, "invalid.yaml")
	writeFile(t, invalid, "explosion:\n  pickup_chance: 1.5\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvFrameRate, "60")
	t.Setenv(EnvTickRatio, "5")
	t.Setenv(EnvBombCapacity, "3")
	t.Setenv(EnvPickupChance, "0.25")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timing.FrameRate != 60 || cfg.Timing.TickRatio != 5 {
		t.Errorf("timing = %+v, expected 60/5", cfg.Timing)
	}
	if cfg.Player.BombCapacity != 3 {
		t.Errorf("BombCapacity = %d, expected 3", cfg.Player.BombCapacity)
	}
	if cfg.Explosion.PickupChance != 0.25 {
		t.Errorf("PickupChance = %g, expected 0.25", cfg.Explosion.PickupChance)
	}

	t.Setenv(EnvTickRatio, "fast")
	if _, err := Load(""); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"small grid", func(c *Config) { c.Grid.Rows = 2 }},
		{"zero frame rate", func(c *Config) { c.Timing.FrameRate = 0 }},
		{"zero tick ratio", func(c *Config) { c.Timing.TickRatio = 0 }},
		{"negative capacity", func(c *Config) { c.Player.BombCapacity = -1 }},
		{"negative chance", func(c *Config) { c.Explosion.PickupChance = -0.1 }},
		{"chance above one", func(c *Config) { c.Explosion.PickupChance = 1.01 }},
		{"density above one", func(c *Config) { c.Generator.StoneDensity = 2 }},
		{"negative monsters", func(c *Config) { c.Generator.Monsters = -1 }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
	}{
		{DifficultyEasy, 20},
		{DifficultyNormal, 15},
		{DifficultyHard, 10},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Timing.TickRatio = 7
		ApplyPreset(&cfg, tt.preset)
		if cfg.Timing.TickRatio != tt.expected {
			t.Errorf("ApplyPreset(%s): TickRatio = %d, expected %d", tt.preset, cfg.Timing.TickRatio, tt.expected)
		}
	}

	cfg := Default()
	cfg.Timing.TickRatio = 7
	ApplyPreset(&cfg, "")
	if cfg.Timing.TickRatio != 7 {
		t.Error("Empty preset should leave the config unchanged")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", s, err)
		}
	}
	_, err := ParsePreset("nightmare")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(nightmare) error = %v, expected ErrInvalid", err)
	}
	if err != nil && !strings.Contains(err.Error(), "easy, normal, hard") {
		t.Errorf("ParsePreset(nightmare) error = %q, expected the known presets", err)
	}
}

func TestPresetNames(t *testing.T) {
	if got := PresetNames(); got != "easy, normal, hard" {
		t.Errorf("PresetNames() = %q, expected %q", got, "easy, normal, hard")
	}
	for _, p := range Presets {
		if _, err := ParsePreset(string(p)); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", p, err)
		}
	}
}

func TestDefaultYAMLMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("DefaultYAML() is not valid YAML: %v", err)
	}
	cfg.Source = "embedded"
	if cfg != Default() {
		t.Errorf("DefaultYAML() = %+v, expected %+v", cfg, Default())
	}
}

func TestFramePeriod(t *testing.T) {
	cfg := Default()
	if got := cfg.FramePeriod(); got != time.Second/30 {
		t.Errorf("FramePeriod() = %v, expected %v", got, time.Second/30)
	}
	cfg.Timing.FrameRate = 60
	if got := cfg.FramePeriod(); got != time.Second/60 {
		t.Errorf("FramePeriod() = %v, expected %v", got, time.Second/60)
	}
}

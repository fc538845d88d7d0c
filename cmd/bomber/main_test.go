package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/levels"
)

const replacementLevel = `id: arena01
name: Replaced
player: {row: 1, col: 1}
tiles:
  - [1, 1, 1]
  - [1, 0, 1]
  - [1, 1, 1]
`

const extraLevel = `id: aaa-extra
player: {row: 1, col: 1}
tiles:
  - [1, 1, 1, 1]
  - [1, 0, 0, 1]
  - [1, 1, 1, 1]
`

func TestLoadLevels(t *testing.T) {
	app.logger = log.New(io.Discard)

	builtin, err := loadLevels("")
	if err != nil {
		t.Fatalf("loadLevels() error = %v", err)
	}
	if len(builtin) == 0 {
		t.Fatal("expected built-in levels")
	}

	dir := t.TempDir()
	files := map[string]string{
		"replace.yaml": replacementLevel,
		"extra.yaml":   extraLevel,
		"broken.yaml":  "id: broken\ntiles: [[1, 9]]\n",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	all, err := loadLevels(dir)
	if err != nil {
		t.Fatalf("loadLevels() error = %v", err)
	}
	if len(all) != len(builtin)+1 {
		t.Fatalf("loadLevels() returned %d levels, expected %d", len(all), len(builtin)+1)
	}
	if all[0].ID != "aaa-extra" {
		t.Errorf("levels should be sorted by ID, first = %s", all[0].ID)
	}

	l, err := lookupLevel(dir, "arena01")
	if err != nil {
		t.Fatalf("lookupLevel() error = %v", err)
	}
	if l.Name != "Replaced" {
		t.Errorf("Name = %q, expected the level from the directory", l.Name)
	}

	if l, err := lookupLevel(dir, "arena02"); err != nil || l.FilePath != "" {
		t.Errorf("lookupLevel(arena02) = %q, %v, expected the built-in level", l.FilePath, err)
	}

	if _, err := lookupLevel(dir, "missing"); !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("lookupLevel() error = %v, expected ErrNotFound", err)
	}
}

func TestCompleteLevelIDs(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte(extraLevel), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{}
	cmd.Flags().String("level-dir", dir, "")

	ids, directive := completeLevelIDs(cmd, nil, "")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v, expected NoFileComp", directive)
	}
	if !slices.Contains(ids, "arena01") || !slices.Contains(ids, "aaa-extra") {
		t.Errorf("completeLevelIDs() = %v, expected built-in and directory IDs", ids)
	}

	if ids, _ := completeLevelIDs(cmd, []string{"arena01"}, ""); len(ids) != 0 {
		t.Errorf("completeLevelIDs() after one arg = %v, expected none", ids)
	}
}

func TestGenerateWritesLevel(t *testing.T) {
	isolateConfig(t)
	app.logger = log.New(io.Discard)

	oldSeed, oldOutput := flagSeed, flagOutput
	t.Cleanup(func() { flagSeed, flagOutput = oldSeed, oldOutput })
	flagSeed = 42
	flagOutput = filepath.Join(t.TempDir(), "arena42.yaml")

	if err := runGenerate(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	got, err := levels.LoadFile(flagOutput)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	want, err := generateLevel(config.Default(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != want.ID || !slices.EqualFunc(got.Tiles, want.Tiles, func(a, b []int) bool { return slices.Equal(a, b) }) {
		t.Errorf("written level %s differs from generated level %s", got.ID, want.ID)
	}

	// Without --output the level goes to stdout.
	flagOutput = ""
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runGenerate(cmd, nil); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}
	if !strings.Contains(buf.String(), "id: generated-42") {
		t.Errorf("stdout = %q, expected the generated level", buf.String())
	}
}

func TestConfigDefaults(t *testing.T) {
	old := flagDefaults
	t.Cleanup(func() { flagDefaults = old })
	flagDefaults = true

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runConfig(cmd, nil); err != nil {
		t.Fatalf("runConfig() error = %v", err)
	}
	if buf.String() != string(config.DefaultYAML()) {
		t.Errorf("runConfig(--defaults) = %q, expected the built-in config file", buf.String())
	}
}

// isolateConfig hides user config files and environment overrides.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, name := range []string{config.EnvFrameRate, config.EnvTickRatio, config.EnvBombCapacity, config.EnvPickupChance} {
		t.Setenv(name, "")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	isolateConfig(t)

	oldFPS, oldConfig := flagFPS, flagConfig
	t.Cleanup(func() { flagFPS, flagConfig = oldFPS, oldConfig })
	flagConfig = ""
	flagFPS = 50

	cfg, err := loadConfig("hard")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Timing.TickRatio != config.TickRatioForPreset(config.DifficultyHard) {
		t.Errorf("TickRatio = %d, expected the hard preset", cfg.Timing.TickRatio)
	}
	if cfg.Timing.FrameRate != 50 {
		t.Errorf("FrameRate = %d, expected 50", cfg.Timing.FrameRate)
	}

	if _, err := loadConfig("insane"); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("loadConfig() error = %v, expected ErrInvalid", err)
	}
}

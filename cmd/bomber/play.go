package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/levels"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/telemetry"
)

var (
	flagLevelDir   string
	flagDifficulty string
	flagGenerate   bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing. Without a level ID the level picker is shown.

Controls:
  Arrows/WASD/HJKL - Move
  Space/B          - Place bomb
  P                - Pause
  R                - Restart (after game over)
  ?                - Toggle help
  Esc              - Back to the level picker
  Q/Ctrl+C         - Quit

Difficulty options (frames per simulation step):
  easy   - 20
  normal - 15
  hard   - 10

Examples:
  bomber play
  bomber play arena01
  bomber play arena03 --difficulty hard
  bomber play --generate --seed 42
  bomber play --level-dir ./my-levels`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeLevelIDs,
	RunE:              runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory with extra level files")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+config.PresetNames())
	playCmd.Flags().BoolVar(&flagGenerate, "generate", false, "Play a generated arena")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	opts := tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Width:  width,
		Height: height,
		Logger: app.logger,
		Tracer: telemetry.Tracer("tui"),
	}
	app.logger.Info("config loaded",
		"source", cfg.Source,
		"frame_rate", cfg.Timing.FrameRate,
		"tick_ratio", cfg.Timing.TickRatio,
	)

	ctx := cmd.Context()

	if flagGenerate {
		if opts.Seed == 0 {
			opts.Seed = time.Now().UnixNano()
		}
		lvl, err := generateLevel(cfg, opts.Seed)
		if err != nil {
			return err
		}
		_, err = tui.Run(ctx, lvl, opts)
		return err
	}

	// A level given on the command line is played first; Esc falls back to
	// the picker.
	if len(args) == 1 {
		lvl, err := lookupLevel(flagLevelDir, args[0])
		if err != nil {
			return fmt.Errorf("%w\nRun 'bomber levels' to see available levels", err)
		}
		res, err := tui.Run(ctx, lvl, opts)
		if err != nil || !res.Back {
			return err
		}
	}

	all, err := loadLevels(flagLevelDir)
	if err != nil {
		return err
	}

	for {
		lvl, err := tui.RunPicker(all, cfg.Player.BombCapacity, width, height)
		if err != nil {
			return err
		}
		if lvl == nil {
			return nil
		}

		res, err := tui.Run(ctx, *lvl, opts)
		if err != nil {
			return err
		}
		app.logger.Info("session ended", "level", lvl.ID, "frames", res.Frames, "game_over", res.GameOver)
		if !res.Back {
			return nil
		}
	}
}

// loadConfig loads the configuration and applies the difficulty preset and
// the --fps override.
func loadConfig(difficulty string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Timing.FrameRate = flagFPS
	}
	return cfg, nil
}

// loadLevels returns the built-in levels plus those found in dir. A level in
// dir replaces a built-in level with the same ID. Invalid files are logged
// and skipped.
func loadLevels(dir string) ([]levels.Level, error) {
	all, skipped, err := levels.Builtin().Scan()
	if err != nil {
		return nil, err
	}
	for _, e := range skipped {
		app.logger.Warn("skipped built-in level", "error", e)
	}
	if dir == "" {
		return all, nil
	}

	extra, skipped, err := levels.NewLoader(dir).Scan()
	if err != nil {
		return nil, err
	}
	for _, e := range skipped {
		app.logger.Warn("skipped level file", "error", e)
	}

	byID := make(map[string]int, len(all))
	for i, l := range all {
		byID[l.ID] = i
	}
	for _, l := range extra {
		if i, ok := byID[l.ID]; ok {
			all[i] = l
			continue
		}
		byID[l.ID] = len(all)
		all = append(all, l)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all, nil
}

// lookupLevel finds a level by ID, preferring dir over the built-in levels.
func lookupLevel(dir, id string) (levels.Level, error) {
	if dir != "" {
		lvl, err := levels.NewLoader(dir).LoadByID(id)
		if !errors.Is(err, levels.ErrNotFound) {
			return lvl, err
		}
	}
	return levels.Builtin().LoadByID(id)
}

// completeLevelIDs offers level IDs for shell completion of play.
func completeLevelIDs(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ids, err := levels.Builtin().ListIDs()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	if dir, _ := cmd.Flags().GetString("level-dir"); dir != "" {
		extra, err := levels.NewLoader(dir).ListIDs()
		if err == nil {
			ids = append(ids, extra...)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

// terminalSize returns the size of the terminal, or the default screen size
// when stdout is not a terminal.
func terminalSize() (int, int) {
	def := core.DefaultConfig()
	width, height := def.ScreenW, def.ScreenH
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

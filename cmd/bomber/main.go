// bomber is a terminal arena game: drop bombs, break stones and avoid the
// patrolling monsters.
//
// Usage:
//
//	bomber play [level]       - Pick a level (or play one directly)
//	bomber play --generate    - Play a generated arena
//	bomber levels             - List available levels
//	bomber validate <file>... - Check level files
//	bomber config             - Show the effective configuration
//	bomber generate           - Write a generated arena as a level file
//
// Global flags:
//
//	--fps <rate>      - Override the frame rate
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Path to a custom config YAML
//	--log-file <path> - Write logs to a file (default: discarded)
//	--debug           - Log every detonation
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/telemetry"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

// app holds what the persistent pre-run sets up for every command.
var app struct {
	logger  *log.Logger
	cleanup []func()
}

func main() {
	// Not fatal - env vars might be set directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: .env file not loaded: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	// Run cleanups in reverse order before exiting.
	for i := len(app.cleanup) - 1; i >= 0; i-- {
		app.cleanup[i]()
	}
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomber",
	Short: "Bomber - a tile arena game for your terminal",
	Long: `Bomber is a terminal arena game. Place bombs to break stones,
collect extra bombs and stay out of the fire and away from monsters.

Available commands:
  play      - Pick a level and play
  levels    - Show all available levels
  validate  - Check level files
  config    - Show the effective configuration
  generate  - Write a generated arena as a level file

Examples:
  bomber play
  bomber play arena02 --difficulty hard
  bomber play --generate --seed 7
  bomber levels --level-dir ./my-levels
  bomber validate ./my-levels/*.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(generateCmd)
}

// setup creates the logger and starts telemetry before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		app.cleanup = append(app.cleanup, func() { _ = f.Close() })
		w = f
	}

	app.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bomber",
	})
	if flagDebug {
		app.logger.SetLevel(log.DebugLevel)
	}

	ctx := cmd.Context()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		app.logger.Warn("telemetry setup failed, running without tracing", "error", err)
		return nil
	}
	if telemetry.Enabled() {
		app.logger.Info("telemetry enabled", "endpoint", os.Getenv(telemetry.EnvEndpoint))
	}
	app.cleanup = append(app.cleanup, func() {
		if err := shutdown(context.Background()); err != nil {
			app.logger.Error("telemetry shutdown failed", "error", err)
		}
	})
	return nil
}

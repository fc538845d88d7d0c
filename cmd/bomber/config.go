package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bomber/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration the game would run with, after the config
file search, environment overrides, --difficulty and --fps are applied.
With --defaults it prints the built-in config file instead, a starting
point for ~/.bomber/configs/bomber.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+config.PresetNames())
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	fmt.Fprintf(out, "# source: %s\n", cfg.Source)
	_, err = out.Write(data)
	return err
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels and those found in --level-dir.
Files that fail validation are reported on stderr.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory with extra level files")
}

func runLevels(_ *cobra.Command, _ []string) error {
	all, err := loadLevels(flagLevelDir)
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Title()))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Source")
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "------")

	for _, l := range all {
		source := l.FilePath
		if source == "" {
			source = "built-in"
		}
		size := fmt.Sprintf("%dx%d", l.Cols(), l.Rows())
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, l.ID, maxNameLen, l.Title(), size, source)
	}

	fmt.Println()
	fmt.Println("Run 'bomber play <id>' to play a level.")
	return nil
}

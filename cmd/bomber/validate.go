package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files",
	Long: `Loads each level file and reports the first problem found:
unknown tile codes, ragged rows, an open border or a bad player start.

Examples:
  bomber validate ./my-levels/maze.yaml
  bomber validate ./my-levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	failed := 0
	for _, p := range args {
		l, err := levels.LoadFile(p)
		if err != nil {
			failed++
			fmt.Printf("FAIL  %v\n", err)
			continue
		}
		fmt.Printf("ok    %s (%s, %dx%d)\n", p, l.ID, l.Cols(), l.Rows())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d level files invalid", failed, len(args))
	}
	return nil
}

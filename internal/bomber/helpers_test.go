package bomber

import "testing"

// arena returns rows x cols codes with an Unbreakable border and Air inside.
func arena(rows, cols int) [][]int {
	codes := make([][]int, rows)
	for r := range codes {
		codes[r] = make([]int, cols)
		for c := range codes[r] {
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				codes[r][c] = CodeUnbreakable
			}
		}
	}
	return codes
}

func newTestGame(t *testing.T, codes [][]int, start Pos, capacity int, s Settings) *Game {
	t.Helper()
	grid, err := NewGridFromCodes(codes)
	if err != nil {
		t.Fatalf("NewGridFromCodes() error = %v", err)
	}
	return New(grid, start, capacity, s)
}

func settings(ratio int, pickup float64) Settings {
	return Settings{TickRatio: ratio, PickupChance: pickup, Seed: 42}
}

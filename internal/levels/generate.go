package levels

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-bomber/internal/bomber"
)

// GenConfig holds the parameters of the arena generator.
type GenConfig struct {
	Rows         int
	Cols         int
	StoneDensity float64 // Share of free interior tiles filled with stone
	Monsters     int
	BombCapacity *int
}

// minMonsterDistance is the Manhattan distance kept between the spawn and
// any generated monster.
const minMonsterDistance = 4

var monsterCodes = [...]int{
	bomber.CodeMonsterUp,
	bomber.CodeMonsterRight,
	bomber.CodeMonsterDown,
	bomber.CodeMonsterLeft,
}

// Generate builds a classic arena:
//   - Border is all Unbreakable
//   - Unbreakable pillar wherever both row and column are even
//   - Random stones at the given density
//   - The spawn corner (1,1) and its two neighbors are kept clear
//   - Monsters on free tiles at least minMonsterDistance from the spawn
//
// The same config and seed always produce the same level.
func Generate(cfg GenConfig, seed int64) (Level, error) {
	if cfg.Rows < 3 || cfg.Cols < 3 {
		return Level{}, fmt.Errorf("%w: got %dx%d", ErrTooSmall, cfg.Rows, cfg.Cols)
	}
	rng := rand.New(rand.NewSource(seed))

	tiles := make([][]int, cfg.Rows)
	for r := range tiles {
		tiles[r] = make([]int, cfg.Cols)
		for c := range tiles[r] {
			switch {
			case r == 0 || c == 0 || r == cfg.Rows-1 || c == cfg.Cols-1:
				tiles[r][c] = bomber.CodeUnbreakable
			case r%2 == 0 && c%2 == 0:
				tiles[r][c] = bomber.CodeUnbreakable
			}
		}
	}

	spawn := bomber.P(1, 1)
	safe := map[bomber.Pos]bool{
		spawn:                       true,
		spawn.Step(bomber.DirRight): true,
		spawn.Step(bomber.DirDown):  true,
	}

	for r := 1; r < cfg.Rows-1; r++ {
		for c := 1; c < cfg.Cols-1; c++ {
			if tiles[r][c] != bomber.CodeAir || safe[bomber.P(r, c)] {
				continue
			}
			if rng.Float64() < cfg.StoneDensity {
				tiles[r][c] = bomber.CodeStone
			}
		}
	}

	var free []bomber.Pos
	for r := 1; r < cfg.Rows-1; r++ {
		for c := 1; c < cfg.Cols-1; c++ {
			if tiles[r][c] == bomber.CodeAir && distance(spawn, bomber.P(r, c)) >= minMonsterDistance {
				free = append(free, bomber.P(r, c))
			}
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	for i := 0; i < cfg.Monsters && i < len(free); i++ {
		p := free[i]
		tiles[p.Row][p.Col] = monsterCodes[rng.Intn(len(monsterCodes))]
	}

	level := Level{
		ID:           fmt.Sprintf("generated-%d", seed),
		Name:         "Generated Arena",
		Player:       spawn,
		BombCapacity: cfg.BombCapacity,
		Tiles:        tiles,
	}
	return level, level.Validate()
}

func distance(a, b bomber.Pos) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

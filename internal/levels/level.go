// Package levels loads arena layouts from YAML files, validates them and
// generates random arenas. This package depends on bomber but bomber does
// not depend on levels.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-bomber/internal/bomber"
)

// Validation errors, checkable with errors.Is.
var (
	ErrMissingID      = errors.New("level has no id")
	ErrTooSmall       = errors.New("level must be at least 3x3")
	ErrNotRectangular = errors.New("level rows differ in length")
	ErrUnknownTile    = errors.New("unknown tile code")
	ErrNotEnclosed    = errors.New("level border is not fully unbreakable")
	ErrBadPlayer      = errors.New("invalid player start")
	ErrNotFound       = errors.New("level not found")
)

// Level represents a complete level definition.
type Level struct {
	ID           string
	Name         string
	Player       bomber.Pos
	BombCapacity *int // nil falls back to the configured capacity
	Tiles        [][]int
	FilePath     string // Empty for built-in and generated levels
}

// Rows returns the number of tile rows.
func (l *Level) Rows() int { return len(l.Tiles) }

// Cols returns the number of tile columns.
func (l *Level) Cols() int {
	if len(l.Tiles) == 0 {
		return 0
	}
	return len(l.Tiles[0])
}

// Title returns the display name, or the ID when the level has no name.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// CapacityOr returns the level's starting bomb capacity, or def when the
// level does not set one.
func (l *Level) CapacityOr(def int) int {
	if l.BombCapacity != nil {
		return *l.BombCapacity
	}
	return def
}

// Validate checks that the level can be played: a rectangular layout of
// known codes, at least 3x3, enclosed by Unbreakable tiles, with the player
// starting on an interior Air tile.
func (l *Level) Validate() error {
	if l.ID == "" {
		return ErrMissingID
	}
	rows, cols := l.Rows(), l.Cols()
	if rows < 3 || cols < 3 {
		return fmt.Errorf("%w: got %dx%d", ErrTooSmall, rows, cols)
	}

	for r, row := range l.Tiles {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrNotRectangular, r, len(row), cols)
		}
		for c, code := range row {
			if _, ok := bomber.TileFromCode(code); !ok {
				return fmt.Errorf("%w: %d at %s", ErrUnknownTile, code, bomber.P(r, c))
			}
			border := r == 0 || c == 0 || r == rows-1 || c == cols-1
			if border && code != bomber.CodeUnbreakable {
				return fmt.Errorf("%w: code %d at %s", ErrNotEnclosed, code, bomber.P(r, c))
			}
		}
	}

	p := l.Player
	if p.Row < 1 || p.Row > rows-2 || p.Col < 1 || p.Col > cols-2 {
		return fmt.Errorf("%w: %s is not inside the border", ErrBadPlayer, p)
	}
	if code := l.Tiles[p.Row][p.Col]; code != bomber.CodeAir {
		return fmt.Errorf("%w: start %s is on tile code %d, expected air", ErrBadPlayer, p, code)
	}
	if l.BombCapacity != nil && *l.BombCapacity < 0 {
		return fmt.Errorf("%w: negative bomb capacity %d", ErrBadPlayer, *l.BombCapacity)
	}
	return nil
}

// NewGrid builds a fresh grid from the level tiles.
func (l *Level) NewGrid() (*bomber.Grid, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return bomber.NewGridFromCodes(l.Tiles)
}

// NewGame creates a game for this level. defaultCapacity is used when the
// level does not set its own bomb capacity.
func (l *Level) NewGame(s bomber.Settings, defaultCapacity int) (*bomber.Game, error) {
	grid, err := l.NewGrid()
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return bomber.New(grid, l.Player, l.CapacityOr(defaultCapacity), s), nil
}

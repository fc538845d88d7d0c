package bomber

import (
	"fmt"
	"strings"
)

// BoundsError reports an access outside the grid. Reaching one is a
// precondition violation: levels are validated to be enclosed by
// Unbreakable tiles so the engine never steps past the border.
type BoundsError struct {
	Pos  Pos
	Rows int
	Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bomber: position %s outside %dx%d grid", e.Pos, e.Rows, e.Cols)
}

// Grid is the arena as a rectangular array of tiles.
// Tiles are stored in row-major order: index = row*Cols + col.
type Grid struct {
	rows  int
	cols  int
	tiles []Tile
}

// NewGrid creates a grid of the given size filled with Air.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, rows*cols),
	}
}

// NewGridFromCodes builds a grid from rows of level-file tile codes.
// Rows must all have the same length and every code must be known.
func NewGridFromCodes(codes [][]int) (*Grid, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, fmt.Errorf("bomber: empty tile layout")
	}
	g := NewGrid(len(codes), len(codes[0]))
	for r, row := range codes {
		if len(row) != g.cols {
			return nil, fmt.Errorf("bomber: row %d has %d tiles, expected %d", r, len(row), g.cols)
		}
		for c, code := range row {
			t, ok := TileFromCode(code)
			if !ok {
				return nil, fmt.Errorf("bomber: unknown tile code %d at %s", code, P(r, c))
			}
			g.tiles[r*g.cols+c] = t
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds returns true if the position is inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) index(p Pos) int {
	if !g.InBounds(p) {
		panic(&BoundsError{Pos: p, Rows: g.rows, Cols: g.cols})
	}
	return p.Row*g.cols + p.Col
}

// At returns the tile at p. Panics with *BoundsError when p is outside.
func (g *Grid) At(p Pos) Tile {
	return g.tiles[g.index(p)]
}

// Set replaces the tile at p. Panics with *BoundsError when p is outside.
func (g *Grid) Set(p Pos, t Tile) {
	g.tiles[g.index(p)] = t
}

// IsBorder reports whether p lies on the outermost ring.
func (g *Grid) IsBorder(p Pos) bool {
	return p.Row == 0 || p.Col == 0 || p.Row == g.rows-1 || p.Col == g.cols-1
}

// Enclosed reports whether every border tile is Unbreakable.
func (g *Grid) Enclosed() bool {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := P(r, c)
			if g.IsBorder(p) && g.At(p).Kind != KindUnbreakable {
				return false
			}
		}
	}
	return true
}

// Count returns the number of tiles of the given kind.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, t := range g.tiles {
		if t.Kind == k {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{rows: g.rows, cols: g.cols, tiles: tiles}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, t := range g.tiles {
		if t != other.tiles[i] {
			return false
		}
	}
	return true
}

// Codes returns the grid as rows of tile codes.
func (g *Grid) Codes() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			out[r][c] = g.tiles[r*g.cols+c].Code()
		}
	}
	return out
}

// String renders the grid as space-separated tile codes, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.Codes() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, code := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%2d", code)
		}
	}
	return sb.String()
}

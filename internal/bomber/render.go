package bomber

import (
	"fmt"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// Layout of the rendered frame.
const (
	CellWidth = 2 // Screen columns per grid cell
	hudRows   = 2 // HUD line + separator
	footRows  = 1 // Reserved for the platform's hint line
)

// Glyph is how one grid cell looks on screen.
type Glyph struct {
	Runes [CellWidth]rune
	Color core.Color
}

var monsterArrows = [...]rune{DirUp: '^', DirRight: '>', DirDown: 'v', DirLeft: '<'}

// Appearance maps a tile to its glyph. Every tile has one.
func Appearance(t Tile) Glyph {
	switch t.Kind {
	case KindUnbreakable:
		return Glyph{[CellWidth]rune{'█', '█'}, core.ColorGray}
	case KindStone:
		return Glyph{[CellWidth]rune{'▒', '▒'}, core.ColorOrange}
	case KindExtraBombPickup:
		return Glyph{[CellWidth]rune{'+', 'b'}, core.ColorBrightYellow}
	case KindBomb:
		switch t.Stage {
		case StageFresh:
			return Glyph{[CellWidth]rune{'(', ')'}, core.ColorWhite}
		case StageClose:
			return Glyph{[CellWidth]rune{'(', ')'}, core.ColorYellow}
		default:
			return Glyph{[CellWidth]rune{'(', ')'}, core.ColorBrightRed}
		}
	case KindFire:
		if t.Strength == StrengthFull {
			return Glyph{[CellWidth]rune{'▓', '▓'}, core.ColorRed}
		}
		return Glyph{[CellWidth]rune{'░', '░'}, core.ColorYellow}
	case KindMonster:
		arrow := '?'
		if int(t.Facing) < len(monsterArrows) {
			arrow = monsterArrows[t.Facing]
		}
		return Glyph{[CellWidth]rune{'M', arrow}, core.ColorMagenta}
	default:
		return Glyph{[CellWidth]rune{' ', ' '}, core.ColorDefault}
	}
}

// MinScreenSize returns the smallest screen that fits the whole arena.
func (g *Game) MinScreenSize() (w, h int) {
	return g.grid.Cols() * CellWidth, g.grid.Rows() + hudRows + footRows
}

// Render draws the HUD, the arena and the player into dst. It only reads
// game state. title is shown at the start of the HUD.
func (g *Game) Render(dst *core.Screen, title string) {
	dst.Clear()

	g.renderHUD(dst, title)

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		RenderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	offX := (dst.Width() - minW) / 2
	offY := hudRows + (dst.Height()-minH)/2

	for r := 0; r < g.grid.Rows(); r++ {
		for c := 0; c < g.grid.Cols(); c++ {
			gl := Appearance(g.grid.At(P(r, c)))
			x := offX + c*CellWidth
			for i, ch := range gl.Runes {
				dst.SetColored(x+i, offY+r, ch, gl.Color)
			}
		}
	}

	// Player is drawn over whatever tile it stands on.
	px := offX + g.player.Pos.Col*CellWidth
	py := offY + g.player.Pos.Row
	if g.player.GameOver {
		dst.SetColored(px, py, 'X', core.ColorBrightRed)
		dst.SetColored(px+1, py, 'X', core.ColorBrightRed)
	} else {
		under := Appearance(g.grid.At(g.player.Pos))
		dst.SetColored(px, py, '@', core.ColorBrightWhite)
		if under.Runes[1] == ' ' {
			dst.SetColored(px+1, py, '@', core.ColorBrightWhite)
		} else {
			dst.SetColored(px+1, py, under.Runes[1], under.Color)
		}
	}

	if g.player.GameOver {
		RenderOverlay(dst, "Game Over", "R to restart, Esc for levels")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, title string) {
	state := "playing"
	if g.player.GameOver {
		state = "game over"
	}
	hud := fmt.Sprintf(" %s  Bombs: %d  Tick: %d  [%s]", title, g.player.BombCapacity, g.tick, state)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorDarkGray)
	}
}

// RenderOverlay draws a centered box with two lines of text.
func RenderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, line2, core.ColorDefault)
}

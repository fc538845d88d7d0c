package bomber

// detectGameOver ends the game if the player's tile is Full fire or a
// monster in any facing. Weak fire is survivable. The flag is never cleared.
func (g *Game) detectGameOver() {
	if g.player.GameOver {
		return
	}
	if g.grid.At(g.player.Pos).IsLethal() {
		g.player.GameOver = true
	}
}

package bomber

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Frame        uint64
	Tick         uint64
	Player       Pos
	BombCapacity int
	GameOver     bool
	Tiles        string // Grid codes, one row per line
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:        g.frame,
		Tick:         g.tick,
		Player:       g.player.Pos,
		BombCapacity: g.player.BombCapacity,
		GameOver:     g.player.GameOver,
		Tiles:        g.grid.String(),
	}
}

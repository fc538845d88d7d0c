package bomber

// Player is the state of the single player.
type Player struct {
	Pos          Pos
	BombCapacity int  // Bombs available to place
	GameOver     bool // Set once, never cleared
}

// apply executes one command against the grid. Commands never fail;
// a move into a blocking tile simply leaves the player where it is.
func (g *Game) apply(cmd Command) {
	if cmd == CmdPlaceBomb {
		g.placeBomb()
		return
	}
	if d, ok := cmd.Dir(); ok {
		g.move(d)
	}
}

// move steps the player one tile in direction d if the target allows it.
func (g *Game) move(d Dir) {
	target := g.player.Pos.Step(d)
	t := g.grid.At(target)

	switch t.Kind {
	case KindAir, KindFire:
		// Stepping into Full fire is caught by the game-over check.
		g.player.Pos = target
	case KindExtraBombPickup:
		g.player.Pos = target
		g.grid.Set(target, Air())
		g.player.BombCapacity++
	case KindUnbreakable, KindStone, KindBomb, KindMonster:
		// Blocked
	}
}

// placeBomb drops a fresh bomb on the player's tile if one is available.
func (g *Game) placeBomb() {
	if g.player.BombCapacity <= 0 {
		return
	}
	g.grid.Set(g.player.Pos, Bomb(StageFresh))
	g.player.BombCapacity--
}

// drainCommands applies queued commands in pop order until the queue is
// empty or the player is caught.
func (g *Game) drainCommands() {
	for !g.player.GameOver {
		cmd, ok := g.queue.Pop()
		if !ok {
			return
		}
		g.apply(cmd)
		g.detectGameOver()
	}
}

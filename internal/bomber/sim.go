package bomber

// TickReport summarizes what one simulation step changed.
type TickReport struct {
	Tick              uint64
	Detonations       int
	Disarmed          int
	StonesBroken      int
	PickupsSpawned    int
	MonstersMoved     int
	MonstersDestroyed int
}

// blast lists the neighbors hit by a detonation and the fire left on each.
// Up and Left were already visited by this pass and keep Full fire until the
// next tick. Down and Right get Weak fire, which the pass reaches later and
// promotes to Full.
var blast = [...]struct {
	dir      Dir
	strength Strength
}{
	{DirUp, StrengthFull},
	{DirLeft, StrengthFull},
	{DirDown, StrengthWeak},
	{DirRight, StrengthWeak},
}

// Step advances bombs, fire and monsters by one tick.
//
// The grid is scanned once, row by row and left to right, skipping the
// border, and every transition is written in place. A tile visited later in
// the pass sees what earlier tiles wrote. Monsters moving Right or Down land
// on a tile the pass has not reached yet, so they are written frozen; the
// pass then only thaws them when it gets there, which keeps every monster to
// one move per tick.
//
// Weak blast fire and frozen monsters never outlive the tick that created
// them: both lie ahead of the scan and are resolved before Step returns.
func (g *Game) Step() TickReport {
	g.tick++
	rep := TickReport{Tick: g.tick}

	for r := 1; r < g.grid.Rows()-1; r++ {
		for c := 1; c < g.grid.Cols()-1; c++ {
			g.stepTile(P(r, c), &rep)
		}
	}
	return rep
}

// stepTile applies the transition table to a single tile.
func (g *Game) stepTile(p Pos, rep *TickReport) {
	t := g.grid.At(p)

	switch t.Kind {
	case KindBomb:
		switch t.Stage {
		case StageFresh:
			g.grid.Set(p, Bomb(StageClose))
		case StageClose:
			g.grid.Set(p, Bomb(StageReallyClose))
		case StageReallyClose:
			g.detonate(p, rep)
		}
	case KindFire:
		if t.Strength == StrengthWeak {
			g.grid.Set(p, Fire(StrengthFull))
		} else {
			g.grid.Set(p, Air())
		}
	case KindMonster:
		g.stepMonster(p, t, rep)
	case KindAir, KindUnbreakable, KindStone, KindExtraBombPickup:
		// Static
	}
}

// stepMonster moves a monster one tile along its facing, or turns it
// clockwise in place when the tile ahead is not Air.
func (g *Game) stepMonster(p Pos, t Tile, rep *TickReport) {
	if t.Frozen {
		g.grid.Set(p, Monster(t.Facing, false))
		return
	}

	ahead := p.Step(t.Facing)
	if g.grid.At(ahead).Kind != KindAir {
		g.grid.Set(p, Monster(t.Facing.Clockwise(), false))
		return
	}

	frozen := t.Facing == DirRight || t.Facing == DirDown
	g.grid.Set(p, Air())
	g.grid.Set(ahead, Monster(t.Facing, frozen))
	rep.MonstersMoved++
}

// detonate turns a ReallyClose bomb into Full fire, returns the bomb to the
// player and hits the four orthogonal neighbors. The blast reaches exactly
// one tile in each direction.
func (g *Game) detonate(p Pos, rep *TickReport) {
	rep.Detonations++
	g.player.BombCapacity++
	g.grid.Set(p, Fire(StrengthFull))

	for _, b := range blast {
		g.explode(p.Step(b.dir), b.strength, rep)
	}
}

// explode applies a blast to one neighbor tile.
func (g *Game) explode(p Pos, strength Strength, rep *TickReport) {
	t := g.grid.At(p)

	switch t.Kind {
	case KindUnbreakable:
		return
	case KindStone:
		rep.StonesBroken++
		if g.rng.Float64() < g.pickupChance {
			g.grid.Set(p, ExtraBombPickup())
			rep.PickupsSpawned++
			return
		}
	case KindBomb:
		// Disarmed: the bomb goes back to the player and does not chain.
		g.player.BombCapacity++
		rep.Disarmed++
	case KindMonster:
		rep.MonstersDestroyed++
	case KindAir, KindFire, KindExtraBombPickup:
	}
	g.grid.Set(p, Fire(strength))
}

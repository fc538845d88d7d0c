// Package bomber implements the grid simulation engine of the arena game:
// the per-tick tile automaton (bomb timers, fire, monster patrols), the
// player command rules and game-over detection.
//
// This package is UI-agnostic and deterministic for a given seed.
package bomber

import "fmt"

// Kind is the tag of a Tile.
type Kind uint8

const (
	KindAir Kind = iota
	KindUnbreakable
	KindStone
	KindExtraBombPickup
	KindBomb
	KindFire
	KindMonster
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAir:
		return "Air"
	case KindUnbreakable:
		return "Unbreakable"
	case KindStone:
		return "Stone"
	case KindExtraBombPickup:
		return "ExtraBombPickup"
	case KindBomb:
		return "Bomb"
	case KindFire:
		return "Fire"
	case KindMonster:
		return "Monster"
	default:
		return "Unknown"
	}
}

// BombStage is the countdown stage of a live bomb.
type BombStage uint8

const (
	StageFresh BombStage = iota
	StageClose
	StageReallyClose
)

func (s BombStage) String() string {
	switch s {
	case StageFresh:
		return "Fresh"
	case StageClose:
		return "Close"
	case StageReallyClose:
		return "ReallyClose"
	default:
		return "Unknown"
	}
}

// Strength is the strength of a fire tile. Only Full fire is lethal.
type Strength uint8

const (
	StrengthWeak Strength = iota
	StrengthFull
)

func (s Strength) String() string {
	if s == StrengthFull {
		return "Full"
	}
	return "Weak"
}

// Tile is the state held by one grid cell. It is a closed variant: Stage is
// meaningful only for KindBomb, Strength only for KindFire, Facing and Frozen
// only for KindMonster. Build tiles with the constructors below so unused
// fields stay zero and tiles compare with ==.
type Tile struct {
	Kind     Kind
	Stage    BombStage
	Strength Strength
	Facing   Dir
	Frozen   bool
}

// Air returns an empty tile.
func Air() Tile { return Tile{Kind: KindAir} }

// Unbreakable returns an indestructible wall.
func Unbreakable() Tile { return Tile{Kind: KindUnbreakable} }

// Stone returns a wall that a blast can break.
func Stone() Tile { return Tile{Kind: KindStone} }

// ExtraBombPickup returns a pickup that grants one bomb.
func ExtraBombPickup() Tile { return Tile{Kind: KindExtraBombPickup} }

// Bomb returns a live bomb at the given stage.
func Bomb(stage BombStage) Tile { return Tile{Kind: KindBomb, Stage: stage} }

// Fire returns a fire tile of the given strength.
func Fire(strength Strength) Tile { return Tile{Kind: KindFire, Strength: strength} }

// Monster returns a patrolling monster.
func Monster(facing Dir, frozen bool) Tile {
	return Tile{Kind: KindMonster, Facing: facing, Frozen: frozen}
}

// IsLethal reports whether a player standing on this tile loses.
func (t Tile) IsLethal() bool {
	switch t.Kind {
	case KindMonster:
		return true
	case KindFire:
		return t.Strength == StrengthFull
	default:
		return false
	}
}

// String returns a readable form such as "Bomb{Close}" or "Monster{Right,frozen}".
func (t Tile) String() string {
	switch t.Kind {
	case KindBomb:
		return fmt.Sprintf("Bomb{%s}", t.Stage)
	case KindFire:
		return fmt.Sprintf("Fire{%s}", t.Strength)
	case KindMonster:
		if t.Frozen {
			return fmt.Sprintf("Monster{%s,frozen}", t.Facing)
		}
		return fmt.Sprintf("Monster{%s}", t.Facing)
	default:
		return t.Kind.String()
	}
}

// Numeric tile codes used by level files.
const (
	CodeAir                = 0
	CodeUnbreakable        = 1
	CodeStone              = 2
	CodeBombFresh          = 3
	CodeBombClose          = 4
	CodeBombReallyClose    = 5
	CodeFireWeak           = 6
	CodeFireFull           = 7
	CodeExtraBombPickup    = 8
	CodeMonsterUp          = 10
	CodeMonsterRight       = 11
	CodeMonsterDown        = 12
	CodeMonsterLeft        = 13
	CodeMonsterRightFrozen = 14
	CodeMonsterDownFrozen  = 15
)

// TileFromCode converts a level-file code to a Tile.
// Returns false for unknown codes.
func TileFromCode(code int) (Tile, bool) {
	switch code {
	case CodeAir:
		return Air(), true
	case CodeUnbreakable:
		return Unbreakable(), true
	case CodeStone:
		return Stone(), true
	case CodeBombFresh:
		return Bomb(StageFresh), true
	case CodeBombClose:
		return Bomb(StageClose), true
	case CodeBombReallyClose:
		return Bomb(StageReallyClose), true
	case CodeFireWeak:
		return Fire(StrengthWeak), true
	case CodeFireFull:
		return Fire(StrengthFull), true
	case CodeExtraBombPickup:
		return ExtraBombPickup(), true
	case CodeMonsterUp:
		return Monster(DirUp, false), true
	case CodeMonsterRight:
		return Monster(DirRight, false), true
	case CodeMonsterDown:
		return Monster(DirDown, false), true
	case CodeMonsterLeft:
		return Monster(DirLeft, false), true
	case CodeMonsterRightFrozen:
		return Monster(DirRight, true), true
	case CodeMonsterDownFrozen:
		return Monster(DirDown, true), true
	default:
		return Tile{}, false
	}
}

// Code returns the level-file code of the tile.
// Frozen Up/Left monsters never occur and encode as their unfrozen form.
func (t Tile) Code() int {
	switch t.Kind {
	case KindAir:
		return CodeAir
	case KindUnbreakable:
		return CodeUnbreakable
	case KindStone:
		return CodeStone
	case KindExtraBombPickup:
		return CodeExtraBombPickup
	case KindBomb:
		return CodeBombFresh + int(t.Stage)
	case KindFire:
		if t.Strength == StrengthFull {
			return CodeFireFull
		}
		return CodeFireWeak
	case KindMonster:
		switch {
		case t.Frozen && t.Facing == DirRight:
			return CodeMonsterRightFrozen
		case t.Frozen && t.Facing == DirDown:
			return CodeMonsterDownFrozen
		}
		return CodeMonsterUp + int(t.Facing)
	default:
		return CodeAir
	}
}

package bomber

import "math/rand"

// Settings are the engine parameters that come from configuration.
type Settings struct {
	TickRatio    int     // Frames per simulation step
	PickupChance float64 // Probability that a blasted stone leaves a pickup
	Seed         int64
}

// DefaultSettings returns the standard engine parameters.
func DefaultSettings() Settings {
	return Settings{
		TickRatio:    15,
		PickupChance: 0.1,
	}
}

// FrameResult describes what one call to Frame did.
type FrameResult struct {
	Frame    uint64
	Ticked   bool       // A simulation step ran this frame
	Report   TickReport // Valid only when Ticked
	GameOver bool
}

// Game owns the grid, the player and the command queue of one session
// and sequences them frame by frame.
type Game struct {
	grid   *Grid
	player Player
	queue  CommandQueue
	rng    *rand.Rand

	tickRatio    int
	pickupChance float64
	countdown    int

	frame uint64
	tick  uint64
}

// New creates a game over grid with the player at start.
// The game takes ownership of grid and mutates it in place.
func New(grid *Grid, start Pos, bombCapacity int, s Settings) *Game {
	ratio := s.TickRatio
	if ratio < 1 {
		ratio = 1
	}
	if bombCapacity < 0 {
		bombCapacity = 0
	}
	return &Game{
		grid: grid,
		player: Player{
			Pos:          start,
			BombCapacity: bombCapacity,
		},
		rng:          rand.New(rand.NewSource(s.Seed)),
		tickRatio:    ratio,
		pickupChance: s.PickupChance,
		countdown:    ratio,
	}
}

// Push queues a player command for the next frame.
func (g *Game) Push(c Command) {
	g.queue.Push(c)
}

// Frame advances the game by one frame: it drains the command queue,
// checks for game over and runs a simulation step every TickRatio frames.
// The step keeps running after game over.
func (g *Game) Frame() FrameResult {
	g.frame++
	res := FrameResult{Frame: g.frame}

	g.drainCommands()
	g.detectGameOver()

	g.countdown--
	if g.countdown <= 0 {
		res.Report = g.Step()
		res.Ticked = true
		g.countdown = g.tickRatio
	}

	res.GameOver = g.player.GameOver
	return res
}

// Player returns a copy of the player state.
func (g *Game) Player() Player { return g.player }

// GameOver reports whether the player has been caught.
func (g *Game) GameOver() bool { return g.player.GameOver }

// At returns the tile at p.
func (g *Game) At(p Pos) Tile { return g.grid.At(p) }

// Rows returns the grid height.
func (g *Game) Rows() int { return g.grid.Rows() }

// Cols returns the grid width.
func (g *Game) Cols() int { return g.grid.Cols() }

// FrameCount returns the number of frames played.
func (g *Game) FrameCount() uint64 { return g.frame }

// TickCount returns the number of simulation steps run.
func (g *Game) TickCount() uint64 { return g.tick }

// TickRatio returns the number of frames per simulation step.
func (g *Game) TickRatio() int { return g.tickRatio }

// Pending returns the number of commands waiting in the queue.
func (g *Game) Pending() int { return g.queue.Len() }

// DiscardPending drops every queued command without applying it.
func (g *Game) DiscardPending() { g.queue.Clear() }

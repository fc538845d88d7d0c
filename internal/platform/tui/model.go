package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-bomber/internal/bomber"
	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/levels"
	"github.com/vovakirdan/tui-bomber/internal/telemetry"
)

// Options configure a play session.
type Options struct {
	Config config.Config
	Seed   int64 // 0 = random based on time
	Width  int
	Height int
	Logger *log.Logger  // nil discards logs
	Tracer trace.Tracer // nil disables tracing
}

// Model is the Bubble Tea model for playing one level.
type Model struct {
	ctx     context.Context
	level   levels.Level
	game    *bomber.Game
	opts    Options
	seed    int64
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	session *telemetry.Session

	paused   bool
	caught   bool // Game over already logged
	restarts int
	quitting bool
	back     bool // Esc: return to the level picker
}

// NewModel creates a new Bubble Tea model for the given level.
func NewModel(ctx context.Context, level levels.Level, opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.NoopTracer()
	}

	m := Model{
		ctx:    ctx,
		level:  level,
		opts:   opts,
		seed:   opts.Seed,
		screen: core.NewScreen(opts.Width, gameHeight(opts.Height)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: opts.Logger.With("level", level.ID),
	}
	m.help.Width = opts.Width

	if err := m.newGame(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// gameHeight leaves the last row of the terminal for the help line.
func gameHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// newGame builds a fresh game from the level and opens its trace session.
func (m *Model) newGame() error {
	settings := bomber.Settings{
		TickRatio:    m.opts.Config.Timing.TickRatio,
		PickupChance: m.opts.Config.Explosion.PickupChance,
		Seed:         m.seed + int64(m.restarts),
	}
	g, err := m.level.NewGame(settings, m.opts.Config.Player.BombCapacity)
	if err != nil {
		return err
	}

	m.game = g
	m.caught = false
	m.session = telemetry.StartSession(m.ctx, m.opts.Tracer, m.level.ID)
	m.logger.Info("game started",
		"session", m.session.ID,
		"seed", settings.Seed,
		"tick_ratio", g.TickRatio(),
		"bombs", g.Player().BombCapacity,
	)
	return nil
}

// endSession closes the current trace session.
func (m *Model) endSession() {
	if m.session == nil {
		return
	}
	m.session.End(m.game.FrameCount(), m.game.TickCount(), m.game.GameOver())
}

// Init starts the frame timer.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Config.FramePeriod())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, gameHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Movement and bomb keys only queue
// commands; the game applies them on the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.endSession()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.back = true
		m.endSession()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if !m.game.GameOver() {
			m.paused = !m.paused
			// Keys pressed just before pausing must not fire on resume.
			m.game.DiscardPending()
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.game.GameOver() {
			m.endSession()
			m.restarts++
			if err := m.newGame(); err != nil {
				m.logger.Error("restart failed", "error", err)
			}
		}
		return m, nil
	}

	if m.paused || m.game.GameOver() {
		return m, nil
	}
	if cmd, ok := m.keys.Command(msg); ok {
		m.game.Push(cmd)
	}
	return m, nil
}

// handleTick advances the game by one frame unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.opts.Config.FramePeriod())
	if m.paused {
		return m, next
	}

	res := m.game.Frame()
	if res.Ticked {
		m.session.Tick(res.Frame, res.Report)
		if res.Report.Detonations > 0 || res.Report.MonstersDestroyed > 0 {
			m.logger.Debug("tick",
				"tick", res.Report.Tick,
				"detonations", res.Report.Detonations,
				"disarmed", res.Report.Disarmed,
				"stones", res.Report.StonesBroken,
				"pickups", res.Report.PickupsSpawned,
				"monsters_destroyed", res.Report.MonstersDestroyed,
			)
		}
	}

	if res.GameOver && !m.caught {
		m.caught = true
		m.session.GameOver(res.Frame)
		m.logger.Info("game over", "frame", res.Frame, "tick", m.game.TickCount())
	}

	return m, next
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen, m.level.Title())
	if m.paused {
		bomber.RenderOverlay(m.screen, "Paused", "Press P to continue")
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Result describes how a play session ended.
type Result struct {
	Back     bool // Return to the level picker
	GameOver bool
	Frames   uint64
}

// Run plays a level until the user quits or goes back.
func Run(ctx context.Context, level levels.Level, opts Options) (Result, error) {
	model, err := NewModel(ctx, level, opts)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{
		Back:     m.back,
		GameOver: m.game.GameOver(),
		Frames:   m.game.FrameCount(),
	}, nil
}

package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/bomber"
	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/levels"
)

func testLevel() levels.Level {
	return levels.Level{
		ID:   "test",
		Name: "Test",
		Tiles: [][]int{
			{1, 1, 1, 1, 1, 1},
			{1, 0, 7, 0, 0, 1},
			{1, 0, 0, 0, 0, 1},
			{1, 1, 1, 1, 1, 1},
		},
		Player: bomber.P(2, 1),
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Timing.TickRatio = 100
	m, err := NewModel(context.Background(), testLevel(), Options{Config: cfg, Seed: 1, Width: 60, Height: 20})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next frame")
	}
	return m
}

func TestModelTickAdvancesFrames(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}
	if got := m.game.FrameCount(); got != 3 {
		t.Errorf("FrameCount() = %d, expected 3", got)
	}
}

func TestModelKeysQueueCommands(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('d'))
	if m.game.Pending() != 1 {
		t.Fatalf("Pending() = %d, expected 1", m.game.Pending())
	}
	if m.game.Player().Pos != bomber.P(2, 1) {
		t.Error("Player should not move before the next frame")
	}

	m = tick(t, m)
	if got := m.game.Player().Pos; got != bomber.P(2, 2) {
		t.Errorf("Pos = %v, expected (2,2)", got)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('d'))
	m, _ = update(t, m, runeKey('p'))
	if m.game.Pending() != 0 {
		t.Error("Pausing should drop queued input")
	}
	m = tick(t, m)
	if m.game.FrameCount() != 0 {
		t.Error("Paused model should not advance frames")
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("View() should show the pause overlay")
	}

	m, _ = update(t, m, runeKey('d'))
	if m.game.Pending() != 0 {
		t.Error("Input should be ignored while paused")
	}

	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m)
	if m.game.FrameCount() != 1 {
		t.Error("Unpaused model should advance frames")
	}
	if got := m.game.Player().Pos; got != bomber.P(2, 1) {
		t.Errorf("Pos = %v, expected input from before the pause to be dropped", got)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t)

	// Restart is ignored while playing.
	m, _ = update(t, m, runeKey('r'))
	if m.restarts != 0 {
		t.Fatal("restart should require game over")
	}

	// Walk up into the full fire at (1,2) via (1,1).
	m, _ = update(t, m, runeKey('w'))
	m = tick(t, m)
	m, _ = update(t, m, runeKey('d'))
	m = tick(t, m)
	if !m.game.GameOver() {
		t.Fatalf("expected game over, player at %v", m.game.Player().Pos)
	}
	if !strings.Contains(m.View(), "Game Over") {
		t.Error("View() should show the game over overlay")
	}

	m, _ = update(t, m, runeKey('r'))
	if m.game.GameOver() || m.restarts != 1 {
		t.Errorf("after restart GameOver = %v, restarts = %d", m.game.GameOver(), m.restarts)
	}
	if m.game.FrameCount() != 0 || m.game.Player().Pos != bomber.P(2, 1) {
		t.Error("restart should start a fresh game from the level")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(t)
	back, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.back || cmd == nil {
		t.Error("Esc should return to the level picker")
	}
	if back.View() != "" {
		t.Error("View() should be empty after leaving")
	}

	m = newTestModel(t)
	quit, cmd := update(t, m, runeKey('q'))
	if !quit.quitting || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelResizeAndHelp(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should toggle the full help")
	}
}

func TestNewModelRejectsInvalidLevel(t *testing.T) {
	bad := testLevel()
	bad.Tiles[0][0] = 0
	if _, err := NewModel(context.Background(), bad, Options{Config: config.Default()}); err == nil {
		t.Error("NewModel() should fail for an open border")
	}
}

func TestPickerSelect(t *testing.T) {
	lvls := []levels.Level{testLevel(), testLevel()}
	lvls[1].ID = "second"

	m := NewPickerModel(lvls, 1, 120, 30)
	if !strings.Contains(m.View(), "second") {
		t.Error("picker should list every level")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(PickerModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PickerModel)

	if cmd == nil || m.Selected() == nil {
		t.Fatal("enter should select a level")
	}
	if m.Selected().ID != "second" {
		t.Errorf("Selected() = %s, expected second", m.Selected().ID)
	}
}

func TestPickerQuit(t *testing.T) {
	m := NewPickerModel(nil, 1, 80, 24)
	if !strings.Contains(m.View(), "No levels found") {
		t.Error("empty picker should say so")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(PickerModel).Selected() != nil {
		t.Error("enter on an empty picker should select nothing")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(PickerModel).IsQuitting() {
		t.Error("q should quit the picker")
	}
}

func TestCountMonsters(t *testing.T) {
	l := testLevel()
	l.Tiles[2][3] = bomber.CodeMonsterLeft
	l.Tiles[2][4] = bomber.CodeMonsterDownFrozen
	if got := countMonsters(l); got != 2 {
		t.Errorf("countMonsters() = %d, expected 2", got)
	}
}

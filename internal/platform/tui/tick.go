// Package tui provides the Bubble Tea integration for the bomber arena.
// It handles the terminal UI loop, input mapping, the level picker and
// frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame to advance the game.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one TickMsg after period.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

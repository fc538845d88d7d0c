package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bomber/internal/bomber"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/levels"
)

// Picker layout constants
const (
	minWidthForPreview = 90 // Minimum width to show the level preview
	pickerChrome       = 8  // Rows used by title, borders and help
)

// PickerKeyMap defines the key bindings for the level picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel is the Bubble Tea model for the level picker.
type PickerModel struct {
	levels      []levels.Level
	defaultBomb int
	table       table.Model
	help        help.Model
	keys        PickerKeyMap
	width       int
	height      int
	selected    *levels.Level
	quitting    bool
	showPreview bool
}

// NewPickerModel creates a picker over the given levels. defaultBombs is
// shown for levels that do not set their own capacity.
func NewPickerModel(lvls []levels.Level, defaultBombs, width, height int) PickerModel {
	m := PickerModel{
		levels:      lvls,
		defaultBomb: defaultBombs,
		help:        help.New(),
		keys:        DefaultPickerKeyMap(),
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized for the window.
func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 16},
		{Title: "Name", Width: 20},
		{Title: "Size", Width: 7},
		{Title: "Monsters", Width: 8},
		{Title: "Bombs", Width: 5},
	}

	height := m.height - pickerChrome
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the level list.
func (m *PickerModel) updateTableRows() {
	rows := make([]table.Row, len(m.levels))
	for i, l := range m.levels {
		rows[i] = table.Row{
			l.ID,
			l.Title(),
			fmt.Sprintf("%dx%d", l.Cols(), l.Rows()),
			fmt.Sprintf("%d", countMonsters(l)),
			fmt.Sprintf("%d", l.CapacityOr(m.defaultBomb)),
		}
	}
	m.table.SetRows(rows)
}

func countMonsters(l levels.Level) int {
	n := 0
	for _, row := range l.Tiles {
		for _, code := range row {
			if t, ok := bomber.TileFromCode(code); ok && t.Kind == bomber.KindMonster {
				n++
			}
		}
	}
	return n
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				selected := m.levels[m.table.Cursor()]
				m.selected = &selected
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("B O M B E R", m.width)))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText("No levels found.", m.width))
		b.WriteString("\n")
	} else {
		tbl := panelStyle.Render(m.table.View())
		if m.showPreview {
			tbl = lipgloss.JoinHorizontal(lipgloss.Top, tbl, "  ", panelStyle.Render(m.preview()))
		}
		b.WriteString(tbl)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// preview draws the highlighted level's starting layout.
func (m PickerModel) preview() string {
	l := m.levels[m.table.Cursor()]
	grid, err := l.NewGrid()
	if err != nil {
		return err.Error()
	}

	s := core.NewScreen(grid.Cols()*bomber.CellWidth, grid.Rows())
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			gl := bomber.Appearance(grid.At(bomber.P(r, c)))
			for i, ch := range gl.Runes {
				s.SetColored(c*bomber.CellWidth+i, r, ch, gl.Color)
			}
		}
	}
	x := l.Player.Col * bomber.CellWidth
	s.SetColored(x, l.Player.Row, '@', core.ColorBrightWhite)
	s.SetColored(x+1, l.Player.Row, '@', core.ColorBrightWhite)
	return RenderScreen(s)
}

// Selected returns the selected level, or nil if none was selected.
func (m PickerModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// RunPicker shows the level picker and returns the chosen level,
// or nil if the user quit.
func RunPicker(lvls []levels.Level, defaultBombs, width, height int) (*levels.Level, error) {
	model := NewPickerModel(lvls, defaultBombs, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}

package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/noteboard/internal/projector"
)

type AddHabitMsg struct{}

type RenameHabitMsg struct {
	ID   string
	Name string
}

type DeleteHabitMsg struct {
	ID   string
	Name string
}

type ToggleHabitMsg struct {
	ID  string
	Day string
}

// MonthChangedMsg asks the parent for the grid of another month.
type MonthChangedMsg struct {
	Month time.Time
}

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Toggle    key.Binding
	Add       key.Binding
	Rename    key.Binding
	Delete    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev habit"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next habit"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next day"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

// Bindings lists the keys shown in the parent's help.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.PrevMonth, k.NextMonth, k.Toggle, k.Add, k.Rename, k.Delete}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const nameWidth = 18

type Model struct {
	keys KeyMap
	grid projector.Month
	row  int
	day  int
}

// New starts on today's column.
func New(grid projector.Month) Model {
	m := Model{keys: DefaultKeyMap()}
	m.SetGrid(grid)
	for i, d := range grid.Days {
		if d.IsToday {
			m.day = i
		}
	}
	return m
}

func (m Model) Keys() KeyMap          { return m.keys }
func (m Model) Month() time.Time      { return m.grid.Start }
func (m Model) Grid() projector.Month { return m.grid }

// SetGrid replaces the projection and clamps the cursor into it.
func (m *Model) SetGrid(grid projector.Month) {
	m.grid = grid
	m.row = clamp(m.row, 0, len(grid.Rows)-1)
	m.day = clamp(m.day, 0, len(grid.Days)-1)
}

// Cursor returns the selected habit row and day index.
func (m Model) Cursor() (int, int) { return m.row, m.day }

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

func (m Model) selected() (projector.HabitRow, bool) {
	if m.row < 0 || m.row >= len(m.grid.Rows) {
		return projector.HabitRow{}, false
	}
	return m.grid.Rows[m.row], true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.row = clamp(m.row-1, 0, len(m.grid.Rows)-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.row = clamp(m.row+1, 0, len(m.grid.Rows)-1)
	case key.Matches(keyMsg, m.keys.PrevDay):
		m.day = clamp(m.day-1, 0, len(m.grid.Days)-1)
	case key.Matches(keyMsg, m.keys.NextDay):
		m.day = clamp(m.day+1, 0, len(m.grid.Days)-1)
	case key.Matches(keyMsg, m.keys.PrevMonth):
		month := m.grid.Start.AddDate(0, -1, 0)
		return m, func() tea.Msg { return MonthChangedMsg{Month: month} }
	case key.Matches(keyMsg, m.keys.NextMonth):
		month := m.grid.Start.AddDate(0, 1, 0)
		return m, func() tea.Msg { return MonthChangedMsg{Month: month} }
	case key.Matches(keyMsg, m.keys.Add):
		return m, func() tea.Msg { return AddHabitMsg{} }
	case key.Matches(keyMsg, m.keys.Toggle):
		if r, ok := m.selected(); ok && m.day < len(m.grid.Days) {
			day := m.grid.Days[m.day].Key
			return m, func() tea.Msg { return ToggleHabitMsg{ID: r.Habit.ID, Day: day} }
		}
	case key.Matches(keyMsg, m.keys.Rename):
		if r, ok := m.selected(); ok {
			return m, func() tea.Msg { return RenameHabitMsg{ID: r.Habit.ID, Name: r.Habit.Name} }
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if r, ok := m.selected(); ok {
			return m, func() tea.Msg { return DeleteHabitMsg{ID: r.Habit.ID, Name: r.Habit.Name} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.grid.Start.Format("January 2006")))
	b.WriteString(mutedStyle.Render("   [ prev · next ]"))
	b.WriteString("\n\n")

	if len(m.grid.Rows) == 0 {
		b.WriteString("  No habits yet.\n  Press 'a' to add one.")
		return b.String()
	}

	// Two header rows: tens digit, then ones digit of the day number.
	var tens, ones strings.Builder
	for i, d := range m.grid.Days {
		t := fmt.Sprintf("%d", d.Date.Day()/10)
		if d.Date.Day() < 10 {
			t = " "
		}
		o := fmt.Sprintf("%d", d.Date.Day()%10)
		style := mutedStyle
		if d.IsToday {
			style = todayStyle
		}
		if i == m.day {
			style = style.Underline(true)
		}
		tens.WriteString(style.Render(t) + " ")
		ones.WriteString(style.Render(o) + " ")
	}
	pad := strings.Repeat(" ", nameWidth+1)
	b.WriteString(pad + tens.String() + "\n")
	b.WriteString(pad + ones.String() + "streak\n")

	for r, row := range m.grid.Rows {
		name := truncate(row.Habit.Name, nameWidth)
		name += strings.Repeat(" ", max(0, nameWidth-lipgloss.Width(name)))
		if r == m.row {
			name = selectedStyle.Render(name)
		}
		b.WriteString(name + " ")

		for i, done := range row.Completed {
			mark, style := "·", emptyStyle
			if done {
				mark, style = "●", doneStyle
			}
			if r == m.row && i == m.day {
				style = cursorStyle
			}
			b.WriteString(style.Render(mark) + " ")
		}
		b.WriteString(fmt.Sprintf("%d", row.Streak))
		b.WriteString("\n")
	}

	if m.day < len(m.grid.Days) {
		b.WriteString("\n" + mutedStyle.Render(m.grid.Days[m.day].Date.Format("Mon Jan 2")))
	}
	return b.String()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

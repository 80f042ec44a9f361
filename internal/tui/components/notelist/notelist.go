package notelist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/utils"
)

type EditNoteMsg struct {
	ID string
}

type DeleteNoteMsg struct {
	ID string
}

type CycleStatusMsg struct {
	ID string
}

type Item struct {
	Note models.Note
	Now  time.Time
}

func (i Item) Title() string {
	if i.Note.IsOverdue(i.Now) {
		return "⚠ " + i.Note.Title
	}
	return i.Note.Title
}

func (i Item) Description() string {
	parts := []string{
		string(i.Note.Status),
		fmt.Sprintf("P:%s E:%s", i.Note.Priority, i.Note.Effort),
	}
	if i.Note.HasDeadline() {
		due := "due " + *i.Note.Deadline
		if i.Note.IsOverdue(i.Now) {
			due += " (overdue)"
		}
		parts = append(parts, due)
	}
	parts = append(parts, "edited "+utils.FormatRelativeDay(i.Note.UpdatedAt, i.Now))
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string { return i.Note.Title }

type KeyMap struct {
	Edit   key.Binding
	Delete key.Binding
	Status key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Status: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle status"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(notes []models.Note, now time.Time, width, height int) Model {
	l := list.New(items(notes, now), list.NewDefaultDelegate(), width, height)
	l.Title = "Notes"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	// Search is driven by the board-wide query, not the list filter.
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return Model{list: l, keys: DefaultKeyMap()}
}

func items(notes []models.Note, now time.Time) []list.Item {
	out := make([]list.Item, len(notes))
	for i, n := range notes {
		out[i] = Item{Note: n, Now: now}
	}
	return out
}

// SetNotes replaces the items, keeping the cursor on the same note when
// it is still present.
func (m *Model) SetNotes(notes []models.Note, now time.Time) {
	selected, _ := m.Selected()
	m.list.SetItems(items(notes, now))
	for i, n := range notes {
		if n.ID == selected.ID {
			m.list.Select(i)
			return
		}
	}
}

func (m Model) Selected() (models.Note, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Note, true
	}
	return models.Note{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Edit):
			if n, ok := m.Selected(); ok {
				return m, func() tea.Msg { return EditNoteMsg{ID: n.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if n, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteNoteMsg{ID: n.ID} }
			}
		case key.Matches(msg, m.keys.Status):
			if n, ok := m.Selected(); ok {
				return m, func() tea.Msg { return CycleStatusMsg{ID: n.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No notes match.\n  Press 'n' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

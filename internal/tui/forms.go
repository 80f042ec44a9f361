package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/noteboard/internal/commands"
	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/models"
)

func levelOptions() []huh.Option[models.Level] {
	return []huh.Option[models.Level]{
		huh.NewOption("Low", models.LevelLow),
		huh.NewOption("High", models.LevelHigh),
	}
}

// NewNoteForm edits a note as free text: the first line is the title.
func NewNoteForm(fm *NoteFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Note").
				Description("First line is the title. Clear everything to discard the note.").
				Lines(8).
				Value(&fm.Text),
			huh.NewSelect[models.Level]().
				Title("Priority").
				Options(levelOptions()...).
				Value(&fm.Priority),
			huh.NewSelect[models.Level]().
				Title("Effort").
				Options(levelOptions()...).
				Value(&fm.Effort),
			huh.NewInput().
				Title("Deadline").
				Description("YYYY-MM-DD, empty for none").
				Value(&fm.Deadline).
				Validate(func(s string) error {
					_, err := models.ParseDeadline(s)
					return err
				}),
		),
	)
}

func NewHabitForm(fm *HabitFormModel) *huh.Form {
	title := "New habit"
	if fm.ID != "" {
		title = "Rename habit"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}
					return nil
				}),
		),
	)
}

func noteFormFor(n models.Note) *NoteFormModel {
	fm := &NoteFormModel{
		ID:       n.ID,
		Text:     commands.EditorText(n),
		Priority: n.Priority,
		Effort:   n.Effort,
	}
	if n.HasDeadline() {
		fm.Deadline = *n.Deadline
	}
	return fm
}

func (m *Model) openNoteForm(n models.Note) tea.Cmd {
	m.noteForm = noteFormFor(n)
	m.form = NewNoteForm(m.noteForm)
	m.state = constants.StateEditNote
	m.ctrl.Unhover()
	return m.form.Init()
}

func (m *Model) openHabitForm(id, name string) tea.Cmd {
	m.habitForm = &HabitFormModel{ID: id, Name: name}
	m.form = NewHabitForm(m.habitForm)
	m.state = constants.StateHabitForm
	return m.form.Init()
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == constants.StateEditNote {
			m.saveNoteForm()
		} else {
			m.saveHabitForm()
		}
		m.state = constants.StateBrowse
		m.refresh()
		return nil
	case huh.StateAborted:
		m.closeForm()
		return nil
	}
	return cmd
}

func (m *Model) closeForm() {
	if m.state == constants.StateEditNote {
		m.ctrl.StopEditing()
	}
	m.state = constants.StateBrowse
	m.form = nil
	m.refresh()
}

func (m *Model) saveNoteForm() {
	fm := m.noteForm
	deadline, err := models.ParseDeadline(fm.Deadline)
	if err != nil {
		m.setError(err.Error())
		m.ctrl.StopEditing()
		return
	}
	outcome, err := m.ctrl.SaveEditor(fm.ID, fm.Text, fm.Priority, fm.Effort, deadline)
	switch {
	case err != nil:
		m.setError(err.Error())
	case outcome == commands.OutcomeDeleted:
		m.setInfo("Empty note discarded")
	default:
		m.setInfo("Note saved")
	}
}

func (m *Model) saveHabitForm() {
	fm := m.habitForm
	if fm.ID == "" {
		if h, ok := m.ctrl.CreateHabit(fm.Name); ok {
			m.setInfo("Added habit " + h.Name)
		}
		return
	}
	if err := m.ctrl.RenameHabit(fm.ID, fm.Name); err != nil {
		m.setError(err.Error())
		return
	}
	m.setInfo("Habit renamed")
}

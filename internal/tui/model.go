package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/controller"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/tui/components/habits"
	"github.com/julianstephens/noteboard/internal/tui/components/notelist"
)

type NoteFormModel struct {
	ID       string
	Text     string
	Priority models.Level
	Effort   models.Level
	Deadline string
}

// HabitFormModel backs both the add and rename forms; ID is empty when adding.
type HabitFormModel struct {
	ID   string
	Name string
}

type Options struct {
	// ExportDir receives CSV exports; defaults to the working directory.
	ExportDir string
}

// cursor is a position inside a column of cards.
type cursor struct {
	col int
	row int
}

type Model struct {
	ctrl        *controller.Controller
	state       constants.SessionState
	keys        KeyMap
	help        help.Model
	search      textinput.Model
	noteList    notelist.Model
	habitsModel habits.Model
	form        *huh.Form
	noteForm    *NoteFormModel
	habitForm   *HabitFormModel
	exportDir   string

	grid   int    // selected index in the grid view
	board  cursor // col is the board column
	matrix cursor // col is the index into models.Quadrants()

	// dropCol is the highlighted target while dragging; a board column or a quadrant index.
	dropCol     int
	showPreview bool

	deleteID    string
	deleteName  string
	deleteHabit bool

	status    string
	statusErr bool
	quitting  bool
	width     int
	height    int
}

func NewModel(ctrl *controller.Controller, opts Options) Model {
	si := textinput.New()
	si.Placeholder = "Search notes..."
	si.Prompt = "/ "
	si.SetValue(ctrl.SearchQuery())

	m := Model{
		ctrl:        ctrl,
		state:       constants.StateBrowse,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		search:      si,
		noteList:    notelist.New(ctrl.VisibleNotes(), ctrl.Now(), 0, 0),
		habitsModel: habits.New(ctrl.HabitMonth(ctrl.Now())),
		exportDir:   opts.ExportDir,
	}
	if m.exportDir == "" {
		m.exportDir = "."
	}
	if notices := ctrl.TakeNotices(); len(notices) > 0 {
		msg := "Repaired stored data: " + notices[0].Error()
		if len(notices) > 1 {
			msg += fmt.Sprintf(" (and %d more)", len(notices)-1)
		}
		m.setError(msg)
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.ctrl.Drag().DraggedID() != "" {
		return append(keys, m.keys.Left, m.keys.Right, m.keys.Enter, m.keys.Cancel)
	}
	switch m.ctrl.ViewMode() {
	case models.ViewGrid, models.ViewList:
		keys = append(keys, m.keys.Search, m.keys.New, m.keys.Edit, m.keys.Status)
	case models.ViewBoard, models.ViewMatrix:
		keys = append(keys, m.keys.Grab, m.keys.New, m.keys.Status, m.keys.Preview)
	case models.ViewHabitTracker:
		hk := m.habitsModel.Keys()
		keys = append(keys, hk.Toggle, hk.Add, hk.PrevMonth, hk.NextMonth)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Export}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}

	var actions []key.Binding
	switch m.ctrl.ViewMode() {
	case models.ViewGrid, models.ViewList:
		actions = []key.Binding{m.keys.Search, m.keys.New, m.keys.Edit, m.keys.Delete, m.keys.Status}
	case models.ViewBoard, models.ViewMatrix:
		actions = []key.Binding{m.keys.Grab, m.keys.Enter, m.keys.Cancel, m.keys.New, m.keys.Edit, m.keys.Delete, m.keys.Status, m.keys.Preview}
	case models.ViewHabitTracker:
		actions = m.habitsModel.Keys().Bindings()
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the program on the alternate screen.
func Run(ctrl *controller.Controller, opts Options) error {
	p := tea.NewProgram(NewModel(ctrl, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/controller"
	"github.com/julianstephens/noteboard/internal/interaction"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/storage"
	"github.com/julianstephens/noteboard/internal/tui/components/habits"
	"github.com/julianstephens/noteboard/internal/tui/components/notelist"
)

var t0 = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

func newTestController(t *testing.T, store storage.Provider) *controller.Controller {
	t.Helper()
	n := 0
	c := controller.New(store, controller.Options{
		Clock: func() time.Time { return t0 },
		NewID: func() string {
			n++
			return fmt.Sprintf("new-%d", n)
		},
	})
	c.Load()
	t.Cleanup(c.Close)
	return c
}

func newTestStore(t *testing.T) *storage.JSONStore {
	t.Helper()
	s := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, s.Init())
	return s
}

func newTestModel(t *testing.T, mode models.ViewMode) (Model, *controller.Controller) {
	t.Helper()
	ctrl := newTestController(t, newTestStore(t))
	require.NoError(t, ctrl.SetViewMode(mode))
	m := NewModel(ctrl, Options{ExportDir: t.TempDir()})
	return send(m, tea.WindowSizeMsg{Width: 120, Height: 40}), ctrl
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// press sends msg and feeds back the component message its command
// produces, the way the runtime would.
func press(m Model, msg tea.Msg) Model {
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case notelist.EditNoteMsg, notelist.DeleteNoteMsg, notelist.CycleStatusMsg,
		habits.AddHabitMsg, habits.RenameHabitMsg, habits.DeleteHabitMsg,
		habits.ToggleHabitMsg, habits.MonthChangedMsg:
		return send(m, out)
	}
	return m
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	space = keyRunes(" ")
	right = tea.KeyMsg{Type: tea.KeyRight}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestTabCyclesAndPersistsViewMode(t *testing.T) {
	store := newTestStore(t)
	ctrl := newTestController(t, store)
	m := send(NewModel(ctrl, Options{}), tea.WindowSizeMsg{Width: 100, Height: 30})

	m = send(m, tab)
	require.Equal(t, models.ViewList, ctrl.ViewMode())
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, models.ViewHabitTracker, ctrl.ViewMode())
	require.Contains(t, m.View(), "Habits")

	reloaded := newTestController(t, store)
	require.Equal(t, models.ViewHabitTracker, reloaded.ViewMode())
}

func TestBoardKeyboardDragMovesNote(t *testing.T) {
	m, ctrl := newTestModel(t, models.ViewBoard)

	m = send(m, space)
	require.Equal(t, interaction.Dragging, ctrl.Drag().State())
	require.Equal(t, "1", ctrl.Drag().DraggedID())

	m = send(m, right, enter)
	require.Equal(t, interaction.Idle, ctrl.Drag().State())
	n, ok := ctrl.Note("1")
	require.True(t, ok)
	require.Equal(t, models.StatusInProgress, n.Status)
	// The cursor follows the note into its new column.
	require.Equal(t, cursor{col: 1, row: 0}, m.board)
}

func TestBoardDropOnSameColumnIsNoop(t *testing.T) {
	m, ctrl := newTestModel(t, models.ViewBoard)
	before, _ := ctrl.Note("1")

	send(m, space, enter)

	after, _ := ctrl.Note("1")
	require.Equal(t, before, after)
	require.Equal(t, interaction.Idle, ctrl.Drag().State())
}

func TestBoardEscCancelsDrag(t *testing.T) {
	m, ctrl := newTestModel(t, models.ViewBoard)

	send(m, space, right, right, esc)

	require.Equal(t, interaction.Idle, ctrl.Drag().State())
	n, _ := ctrl.Note("1")
	require.Equal(t, models.StatusTodo, n.Status)
}

func TestMatrixDragChangesQuadrant(t *testing.T) {
	m, ctrl := newTestModel(t, models.ViewMatrix)

	send(m, space, down, enter)

	n, _ := ctrl.Note("1")
	require.Equal(t, models.LevelLow, n.Priority)
	require.Equal(t, models.LevelLow, n.Effort)
	require.Equal(t, interaction.Idle, ctrl.Drag().State())
}

func TestCycleStatusToCompletedCelebrates(t *testing.T) {
	m, ctrl := newTestModel(t, models.ViewBoard)

	m = send(m, right, keyRunes("s"))

	n, _ := ctrl.Note("2")
	require.Equal(t, models.StatusCompleted, n.Status)
	require.Equal(t, "🎉 Completed: Plan new feature", m.status)
	require.False(t, m.statusErr)
}

func TestSearchFiltersGridAndEscClears(t *testing.T) {
	m, ctrl := newTestModel(t, models.ViewGrid)

	m = send(m, keyRunes("/"))
	require.Equal(t, constants.StateSearch, m.state)
	m = send(m, keyRunes("kanban"))
	require.Equal(t, "kanban", ctrl.SearchQuery())
	require.Len(t, ctrl.VisibleNotes(), 1)

	m = send(m, esc)
	require.Equal(t, constants.StateBrowse, m.state)
	require.Empty(t, ctrl.SearchQuery())
	require.Len(t, ctrl.VisibleNotes(), 4)
}

func TestSearchUnavailableOnBoard(t *testing.T) {
	m, _ := newTestModel(t, models.ViewBoard)
	m = send(m, keyRunes("/"))
	require.Equal(t, constants.StateBrowse, m.state)
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	m, ctrl := newTestModel(t, models.ViewGrid)

	m = send(m, keyRunes("d"))
	require.Equal(t, constants.StateConfirmDelete, m.state)
	require.Len(t, ctrl.Notes(), 4)

	m = send(m, keyRunes("n"))
	require.Equal(t, constants.StateBrowse, m.state)
	require.Len(t, ctrl.Notes(), 4)

	m = send(m, keyRunes("d"), keyRunes("y"))
	require.Equal(t, constants.StateBrowse, m.state)
	require.Len(t, ctrl.Notes(), 3)
	_, ok := ctrl.Note("1")
	require.False(t, ok)
}

func TestNewNoteOpensEditorAndEscCloses(t *testing.T) {
	m, ctrl := newTestModel(t, models.ViewGrid)

	m = send(m, keyRunes("n"))
	require.Equal(t, constants.StateEditNote, m.state)
	require.Equal(t, "new-1", ctrl.EditingNoteID())
	require.Len(t, ctrl.Notes(), 5)

	m = send(m, esc)
	require.Equal(t, constants.StateBrowse, m.state)
	require.Empty(t, ctrl.EditingNoteID())
}

func TestExportWritesCSV(t *testing.T) {
	m, _ := newTestModel(t, models.ViewGrid)

	m = send(m, keyRunes("x"))

	require.False(t, m.statusErr, m.status)
	files, err := filepath.Glob(filepath.Join(m.exportDir, "notes-export-*.csv"))
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestHabitToggleMarksSelectedDay(t *testing.T) {
	store := newTestStore(t)
	ctrl := newTestController(t, store)
	h, ok := ctrl.CreateHabit("Read")
	require.True(t, ok)
	require.NoError(t, ctrl.SetViewMode(models.ViewHabitTracker))
	m := send(NewModel(ctrl, Options{}), tea.WindowSizeMsg{Width: 120, Height: 40})

	press(m, space)

	got, _ := ctrl.Habit(h.ID)
	require.True(t, got.Completed(models.DayKey(t0)))
}

func TestPreviewFollowsSelectionUntilDrag(t *testing.T) {
	m, ctrl := newTestModel(t, models.ViewBoard)

	m = send(m, keyRunes("p"))
	id, _, ok := ctrl.Drag().Preview()
	require.True(t, ok)
	require.Equal(t, "1", id)
	require.Contains(t, m.View(), "Edited Today")

	m = send(m, down)
	id, _, _ = ctrl.Drag().Preview()
	require.Equal(t, "4", id)

	send(m, space)
	_, _, ok = ctrl.Drag().Preview()
	require.False(t, ok)
}

func TestOverlay(t *testing.T) {
	require.Equal(t, "aaaa\nbXYb", overlay("aaaa\nbbbb", "XY", 1, 1))
	require.Equal(t, "ab  Z", overlay("ab", "Z", 4, 0))
	require.Equal(t, "ab\nZ", overlay("ab", "Z", 0, 1))
}

func TestStartupReportsDroppedRecords(t *testing.T) {
	store := newTestStore(t)
	notes := []models.Note{{ID: "a", Title: "first"}, {ID: "a", Title: "second"}}
	require.NoError(t, storage.SaveValue(store, constants.NotesKey, notes))
	require.NoError(t, store.Put(constants.HabitsKey, []byte(`[{"id":"h","name":"Read"},{"id":"h","name":"Run"}]`)))

	m := NewModel(newTestController(t, store), Options{ExportDir: t.TempDir()})
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	require.True(t, m.statusErr)
	require.Contains(t, m.status, `dropped note "second"`)
	require.Contains(t, m.status, "(and 1 more)")
}

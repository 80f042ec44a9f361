package controller

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/julianstephens/noteboard/internal/commands"
	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/interaction"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/storage"
)

var t0 = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

type recordingCelebrator struct {
	mu    sync.Mutex
	notes []models.Note
	err   error
}

func (r *recordingCelebrator) Celebrate(n models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
	return r.err
}

func (r *recordingCelebrator) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes)
}

// brokenStore reads like an empty store and refuses every write.
type brokenStore struct {
	storage.JSONStore
}

func (b *brokenStore) Get(string) ([]byte, error) { return nil, storage.ErrNotFound }
func (b *brokenStore) Put(string, []byte) error   { return errors.New("quota exceeded") }

func newStore(t *testing.T) *storage.JSONStore {
	t.Helper()
	s := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, s.Init())
	return s
}

func seqIDs() commands.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newController(t *testing.T, store storage.Provider, cel Celebrator) *Controller {
	t.Helper()
	now := t0
	c := New(store, Options{
		Clock: func() time.Time {
			now = now.Add(time.Second)
			return now
		},
		NewID:      seqIDs(),
		Celebrator: cel,
	})
	c.Load()
	t.Cleanup(c.Close)
	return c
}

func TestLoadSeedsFreshStore(t *testing.T) {
	c := newController(t, newStore(t), nil)

	require.Len(t, c.Notes(), 4)
	require.Empty(t, c.Habits())
	require.Equal(t, models.ViewGrid, c.ViewMode())
}

func TestLoadRestoresPersistedState(t *testing.T) {
	store := newStore(t)
	notes := []models.Note{{ID: "a", Title: "", Status: "", CreatedAt: t0, UpdatedAt: t0.Add(-time.Hour)}}
	require.NoError(t, storage.SaveValue(store, constants.NotesKey, notes))
	require.NoError(t, storage.SaveValue(store, constants.HabitsKey, []models.Habit{{ID: "h", Name: "Run"}}))
	require.NoError(t, storage.SaveValue(store, constants.ViewModeKey, models.ViewMatrix))

	c := newController(t, store, nil)

	require.Len(t, c.Notes(), 1)
	n := c.Notes()[0]
	require.Equal(t, "Untitled", n.Title)
	require.Equal(t, models.StatusTodo, n.Status)
	require.Equal(t, models.LevelLow, n.Priority)
	require.False(t, n.UpdatedAt.Before(n.CreatedAt))
	require.NotNil(t, c.Habits()[0].Completions)
	require.Equal(t, models.ViewMatrix, c.ViewMode())
}

func TestLoadCorruptedValues(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Put(constants.NotesKey, []byte(`"not a list"`)))
	require.NoError(t, store.Put(constants.ViewModeKey, []byte(`"SIDEWAYS"`)))

	c := newController(t, store, nil)
	require.Len(t, c.Notes(), 4, "falls back to the welcome notes")
	require.Equal(t, models.ViewGrid, c.ViewMode())
}

func TestLoadDropsDuplicateIDs(t *testing.T) {
	store := newStore(t)
	notes := []models.Note{{ID: "a", Title: "first"}, {ID: "a", Title: "second"}}
	require.NoError(t, storage.SaveValue(store, constants.NotesKey, notes))

	c := newController(t, store, nil)
	require.Len(t, c.Notes(), 1)
	require.Equal(t, "first", c.Notes()[0].Title)

	notices := c.TakeNotices()
	require.Len(t, notices, 1)
	require.ErrorContains(t, notices[0], `"second"`)
	require.Empty(t, c.TakeNotices(), "notices are cleared once taken")
}

func TestLoadNormalizesHabits(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Put(constants.HabitsKey, []byte(
		`[{"id":"h1","name":"   "},{"id":"h1","name":"Run","completions":{"2025-04-01":false}},`+
			`{"id":"h2","name":"  Read ","completions":{"2025-03-31":true,"2025-04-01":false}}]`)))

	c := newController(t, store, nil)
	require.Len(t, c.Habits(), 2)

	first, ok := c.Habit("h1")
	require.True(t, ok)
	require.Equal(t, constants.UntitledTitle, first.Name)
	require.NotNil(t, first.Completions)

	read, ok := c.Habit("h2")
	require.True(t, ok)
	require.Equal(t, "Read", read.Name)
	require.Equal(t, map[string]bool{"2025-03-31": true}, read.Completions)
	require.False(t, read.Completed("2025-04-01"))

	notices := c.TakeNotices()
	require.Len(t, notices, 1)
	require.ErrorContains(t, notices[0], `dropped habit "Run"`)

	done, err := c.ToggleCompletion("h2", "2025-04-01")
	require.NoError(t, err)
	require.True(t, done, "a day stored as false toggles to done")
}

func TestLoadWithoutRepairsHasNoNotices(t *testing.T) {
	c := newController(t, newStore(t), nil)
	require.Empty(t, c.TakeNotices())
}

func TestMutationsArePersisted(t *testing.T) {
	store := newStore(t)
	c := newController(t, store, nil)

	n := c.CreateNote()
	_, err := c.ChangeStatus(n.ID, models.StatusInProgress)
	require.NoError(t, err)
	_, ok := c.CreateHabit("Stretch")
	require.True(t, ok)
	require.NoError(t, c.SetViewMode(models.ViewBoard))

	reloaded := newController(t, store, nil)
	require.Len(t, reloaded.Notes(), 5)
	got, ok := reloaded.Note(n.ID)
	require.True(t, ok)
	require.Equal(t, models.StatusInProgress, got.Status)
	require.Len(t, reloaded.Habits(), 1)
	require.Equal(t, models.ViewBoard, reloaded.ViewMode())
}

func TestWriteFailureIsAWarning(t *testing.T) {
	c := newController(t, &brokenStore{}, nil)

	n := c.CreateNote()
	require.Equal(t, n.ID, c.Notes()[0].ID, "in-memory state stays authoritative")

	warning := c.TakeWarning()
	require.Error(t, warning)
	require.Contains(t, warning.Error(), "quota exceeded")
	require.NoError(t, c.TakeWarning(), "warning is cleared once taken")
}

func TestEditLifecycle(t *testing.T) {
	c := newController(t, newStore(t), nil)

	n := c.CreateNote()
	require.Equal(t, n.ID, c.EditingNoteID(), "create enters edit mode")

	editing, ok := c.EditingNote()
	require.True(t, ok)
	require.Equal(t, n.ID, editing.ID)

	outcome, err := c.SaveEditor(n.ID, "Groceries\nmilk\neggs", models.LevelHigh, models.LevelLow, nil)
	require.NoError(t, err)
	require.Equal(t, commands.OutcomeUpdated, outcome)
	require.Empty(t, c.EditingNoteID(), "update closes edit mode")

	saved, _ := c.Note(n.ID)
	require.Equal(t, "Groceries", saved.Title)
	require.Equal(t, "milk\neggs", saved.Content)
	require.Equal(t, models.LevelHigh, saved.Priority)

	require.NoError(t, c.StartEditing(n.ID))
	outcome, err = c.SaveEditor(n.ID, "   ", models.LevelLow, models.LevelLow, nil)
	require.NoError(t, err)
	require.Equal(t, commands.OutcomeDeleted, outcome)
	_, ok = c.Note(n.ID)
	require.False(t, ok, "saving empty text deletes the note")

	require.ErrorIs(t, c.StartEditing("missing"), ErrNoteNotFound)
	_, err = c.UpdateNote(models.Note{ID: "missing", Title: "x"})
	require.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDeleteClearsEditMode(t *testing.T) {
	c := newController(t, newStore(t), nil)

	n := c.CreateNote()
	c.DeleteNote(n.ID)
	require.Empty(t, c.EditingNoteID())
	_, ok := c.Note(n.ID)
	require.False(t, ok)

	before := len(c.Notes())
	c.DeleteNote("never-existed")
	require.Len(t, c.Notes(), before)
}

func TestCelebrationOnCompletion(t *testing.T) {
	cel := &recordingCelebrator{err: errors.New("tray offline")}
	c := newController(t, newStore(t), cel)

	n := c.CreateNote()
	completed, err := c.ChangeStatus(n.ID, models.StatusCompleted)
	require.NoError(t, err)
	require.True(t, completed)

	completed, err = c.ChangeStatus(n.ID, models.StatusCompleted)
	require.NoError(t, err)
	require.False(t, completed, "already completed")

	_, err = c.ChangeStatus(n.ID, models.StatusTodo)
	require.NoError(t, err)

	c.Close()
	require.Equal(t, 1, cel.count())
}

func TestCycleStatus(t *testing.T) {
	c := newController(t, newStore(t), nil)
	n := c.CreateNote()

	for _, want := range []models.Status{models.StatusInProgress, models.StatusCompleted, models.StatusTodo} {
		_, err := c.CycleStatus(n.ID)
		require.NoError(t, err)
		got, _ := c.Note(n.ID)
		require.Equal(t, want, got.Status)
	}

	_, err := c.CycleStatus("missing")
	require.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDropOnSameColumnIsNoop(t *testing.T) {
	store := newStore(t)
	c := newController(t, store, nil)
	n := c.CreateNote()
	before, _ := c.Note(n.ID)
	snapshot, err := store.Get(constants.NotesKey)
	require.NoError(t, err)

	c.StartDrag(n.ID)
	res, completed := c.Drop(interaction.ColumnTarget(models.StatusTodo))

	require.False(t, res.Accepted)
	require.False(t, completed)
	require.Equal(t, interaction.Idle, c.Drag().State())
	after, _ := c.Note(n.ID)
	require.Equal(t, before, after)

	stored, err := store.Get(constants.NotesKey)
	require.NoError(t, err)
	require.Equal(t, string(snapshot), string(stored), "nothing written")
}

func TestDropMovesNote(t *testing.T) {
	cel := &recordingCelebrator{}
	c := newController(t, newStore(t), cel)
	n := c.CreateNote()

	c.Hover(n.ID, interaction.Rect{Width: 10, Height: 2})
	c.StartDrag(n.ID)
	_, _, previewing := c.Drag().Preview()
	require.False(t, previewing, "drag cancels the preview")

	res, completed := c.Drop(interaction.ColumnTarget(models.StatusCompleted))
	require.True(t, res.Accepted)
	require.True(t, completed)
	got, _ := c.Note(n.ID)
	require.Equal(t, models.StatusCompleted, got.Status)

	q := models.Quadrant{Priority: models.LevelHigh, Effort: models.LevelHigh}
	c.StartDrag(n.ID)
	res, _ = c.Drop(interaction.QuadrantTarget(q))
	require.True(t, res.Accepted)
	got, _ = c.Note(n.ID)
	require.Equal(t, q, got.Quadrant())
	require.Equal(t, interaction.Idle, c.Drag().State())

	c.Close()
	require.Equal(t, 1, cel.count())
}

func TestHabits(t *testing.T) {
	c := newController(t, newStore(t), nil)

	_, ok := c.CreateHabit("  ")
	require.False(t, ok)
	require.Empty(t, c.Habits())

	h, ok := c.CreateHabit("Read")
	require.True(t, ok)

	require.NoError(t, c.RenameHabit(h.ID, "Read 20 pages"))
	require.NoError(t, c.RenameHabit(h.ID, " "))
	got, _ := c.Habit(h.ID)
	require.Equal(t, "Read 20 pages", got.Name)
	require.ErrorIs(t, c.RenameHabit("missing", "x"), ErrHabitNotFound)

	done, err := c.ToggleCompletion(h.ID, "2025-04-01")
	require.NoError(t, err)
	require.True(t, done)
	done, err = c.ToggleCompletion(h.ID, "2025-04-01")
	require.NoError(t, err)
	require.False(t, done)
	_, err = c.ToggleCompletion("missing", "2025-04-01")
	require.ErrorIs(t, err, ErrHabitNotFound)

	c.DeleteHabit(h.ID)
	require.Empty(t, c.Habits())
}

func TestProjections(t *testing.T) {
	c := newController(t, newStore(t), nil)

	c.SetSearchQuery("welcome")
	visible := c.VisibleNotes()
	require.Len(t, visible, 1)
	require.Equal(t, "1", visible[0].ID)

	board := c.Board()
	require.Len(t, board.Columns, 3)
	total := 0
	for _, col := range board.Columns {
		total += len(col.Notes)
	}
	require.Equal(t, 4, total)

	matrix := c.Matrix()
	for _, b := range matrix {
		require.Len(t, b.Notes, 1, "each welcome note sits in its own quadrant")
	}

	require.Error(t, c.SetViewMode("SIDEWAYS"))
}

func TestCustomColumns(t *testing.T) {
	c := New(newStore(t), Options{Columns: []models.Status{models.StatusTodo, "Blocked"}})
	c.Load()

	board := c.Board()
	require.Len(t, board.Columns, 2)
	require.Equal(t, models.Status("Blocked"), board.Columns[1].Status)
	require.Len(t, board.Unrecognized, 2, "In Progress and Completed have no column")
}

func TestExport(t *testing.T) {
	c := newController(t, newStore(t), nil)

	var buf bytes.Buffer
	require.NoError(t, c.Export(&buf))
	require.Equal(t, 5, strings.Count(buf.String(), "\n")+1)

	for _, n := range c.Notes() {
		c.DeleteNote(n.ID)
	}
	require.ErrorIs(t, c.Export(&buf), ErrNothingToExport)

	_, err := c.ExportToFile(t.TempDir())
	require.ErrorIs(t, err, ErrNothingToExport)
}

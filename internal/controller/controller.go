// Package controller owns the application state. Views read projections
// from it and request changes through its methods; they never modify the
// collections themselves.
package controller

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/julianstephens/noteboard/internal/commands"
	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/export"
	"github.com/julianstephens/noteboard/internal/interaction"
	"github.com/julianstephens/noteboard/internal/logger"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/projector"
	"github.com/julianstephens/noteboard/internal/storage"
)

var (
	// ErrNoteNotFound is returned when a command names an unknown note.
	ErrNoteNotFound = errors.New("note not found")
	// ErrHabitNotFound is returned when a command names an unknown habit.
	ErrHabitNotFound = errors.New("habit not found")
	// ErrNothingToExport is returned by Export when there are no notes.
	ErrNothingToExport = export.ErrNoNotes
)

// Celebrator is told when a note moves into Completed. It runs in the
// background and its errors are only logged.
type Celebrator interface {
	Celebrate(note models.Note) error
}

// State is everything the views render from.
type State struct {
	Notes         []models.Note
	Habits        []models.Habit
	ViewMode      models.ViewMode
	SearchQuery   string
	EditingNoteID string
	Drag          interaction.Machine
	// Warning is the most recent failed write, kept until TakeWarning.
	Warning error
	// Notices describe records Load had to drop, kept until TakeNotices.
	Notices []error
}

type Options struct {
	Clock      commands.Clock
	NewID      commands.IDFunc
	Celebrator Celebrator
	// Columns are the board columns; defaults to models.KanbanColumns.
	Columns []models.Status
}

type Controller struct {
	store      storage.Provider
	state      State
	clock      commands.Clock
	newID      commands.IDFunc
	celebrator Celebrator
	columns    []models.Status
	pending    sync.WaitGroup
}

func New(store storage.Provider, opts Options) *Controller {
	c := &Controller{
		store:      store,
		clock:      opts.Clock,
		newID:      opts.NewID,
		celebrator: opts.Celebrator,
		columns:    opts.Columns,
		state:      State{ViewMode: models.ViewGrid},
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	if c.newID == nil {
		c.newID = commands.NewID
	}
	if len(c.columns) == 0 {
		c.columns = models.KanbanColumns
	}
	return c
}

// Load reads the three collections from the store. Missing or unreadable
// values fall back to the welcome notes, no habits and the grid view.
// Repairs that lose data are reported through TakeNotices.
func (c *Controller) Load() {
	var notices []error

	notes := storage.LoadValue(c.store, constants.NotesKey, models.SeedNotes(c.clock()))
	for i := range notes {
		notes[i].Normalize()
	}
	notes, dropped := dedupe(notes, func(n models.Note) string { return n.ID })
	for _, n := range dropped {
		notices = append(notices, fmt.Errorf("dropped note %q: id %s is already used", n.Title, n.ID))
	}

	habits := storage.LoadValue(c.store, constants.HabitsKey, []models.Habit{})
	for i := range habits {
		habits[i].Normalize()
	}
	habits, droppedHabits := dedupe(habits, func(h models.Habit) string { return h.ID })
	for _, h := range droppedHabits {
		notices = append(notices, fmt.Errorf("dropped habit %q: id %s is already used", h.Name, h.ID))
	}

	mode := storage.LoadValue(c.store, constants.ViewModeKey, models.ViewGrid)
	if !mode.Valid() {
		logger.Warn("Stored view mode is invalid, using grid", "mode", mode)
		mode = models.ViewGrid
	}

	c.state = State{Notes: notes, Habits: habits, ViewMode: mode, Notices: notices}
	logger.Debug("State loaded", "notes", len(notes), "habits", len(habits), "view", mode)
}

// dedupe drops items whose id was already seen, keeping the first, and
// returns what it dropped.
func dedupe[T any](items []T, id func(T) string) (kept, dropped []T) {
	seen := make(map[string]bool, len(items))
	kept = items[:0]
	for _, item := range items {
		key := id(item)
		if seen[key] {
			logger.Warn("Dropping record with duplicate id", "id", key)
			dropped = append(dropped, item)
			continue
		}
		seen[key] = true
		kept = append(kept, item)
	}
	return kept, dropped
}

// State returns a snapshot. The slices are shared with the controller and
// must be treated as read-only.
func (c *Controller) State() State { return c.state }

func (c *Controller) Notes() []models.Note       { return c.state.Notes }
func (c *Controller) Habits() []models.Habit     { return c.state.Habits }
func (c *Controller) ViewMode() models.ViewMode  { return c.state.ViewMode }
func (c *Controller) SearchQuery() string        { return c.state.SearchQuery }
func (c *Controller) Columns() []models.Status   { return c.columns }
func (c *Controller) Drag() *interaction.Machine { return &c.state.Drag }
func (c *Controller) EditingNoteID() string      { return c.state.EditingNoteID }
func (c *Controller) StorePath() string          { return c.store.GetConfigPath() }
func (c *Controller) Now() time.Time             { return c.clock() }

// TakeWarning returns and clears the last persistence failure.
func (c *Controller) TakeWarning() error {
	err := c.state.Warning
	c.state.Warning = nil
	return err
}

// TakeNotices returns and clears what Load dropped from the stored data.
// The drop becomes permanent with the next write.
func (c *Controller) TakeNotices() []error {
	notices := c.state.Notices
	c.state.Notices = nil
	return notices
}

// Note looks up a note by id.
func (c *Controller) Note(id string) (models.Note, bool) {
	for _, n := range c.state.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

// Habit looks up a habit by id.
func (c *Controller) Habit(id string) (models.Habit, bool) {
	for _, h := range c.state.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Close waits for background celebrations to finish.
func (c *Controller) Close() {
	c.pending.Wait()
}

func (c *Controller) save(key string, v any) {
	if err := storage.SaveValue(c.store, key, v); err != nil {
		logger.Warn("Failed to persist changes; keeping them in memory", "key", key, "error", err)
		c.state.Warning = err
	}
}

func (c *Controller) setNotes(notes []models.Note) {
	c.state.Notes = notes
	c.save(constants.NotesKey, notes)
}

func (c *Controller) setHabits(habits []models.Habit) {
	c.state.Habits = habits
	c.save(constants.HabitsKey, habits)
}

func (c *Controller) celebrate(id string) {
	if c.celebrator == nil {
		return
	}
	n, ok := c.Note(id)
	if !ok {
		return
	}
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		if err := c.celebrator.Celebrate(n); err != nil {
			logger.Debug("Celebration not delivered", "note", n.ID, "error", err)
		}
	}()
}

// SetViewMode switches views and remembers the choice.
func (c *Controller) SetViewMode(mode models.ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid view mode %q", mode)
	}
	c.state.ViewMode = mode
	c.save(constants.ViewModeKey, mode)
	return nil
}

// SetSearchQuery updates the grid/list filter. It is not persisted.
func (c *Controller) SetSearchQuery(q string) {
	c.state.SearchQuery = q
}

// VisibleNotes is the grid and list projection.
func (c *Controller) VisibleNotes() []models.Note {
	return projector.Visible(c.state.Notes, c.state.SearchQuery)
}

// Board is the kanban projection.
func (c *Controller) Board() projector.StatusBoard {
	return projector.GroupByStatus(c.state.Notes, c.columns)
}

// Matrix is the priority matrix projection.
func (c *Controller) Matrix() projector.QuadrantBuckets {
	return projector.GroupByQuadrant(c.state.Notes)
}

// HabitMonth is the habit tracker projection for the month containing month.
func (c *Controller) HabitMonth(month time.Time) projector.Month {
	return projector.MonthGrid(c.state.Habits, month, c.clock())
}

// Export writes every note as CSV in collection order.
func (c *Controller) Export(w io.Writer) error {
	return export.Write(w, c.state.Notes)
}

// ExportToFile writes the CSV export into dir and returns its path.
func (c *Controller) ExportToFile(dir string) (string, error) {
	return export.ToFile(dir, c.state.Notes, c.clock())
}

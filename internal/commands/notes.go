// Package commands holds the mutations applied to the note and habit
// collections. Each command returns a new slice; neither the input slice
// nor the records it holds are modified.
package commands

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/models"
)

// Clock returns the current time.
type Clock func() time.Time

// IDFunc returns a fresh identifier.
type IDFunc func() string

// NewID returns a time-ordered UUIDv7 string.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Outcome reports what UpdateNote did.
type Outcome int

const (
	OutcomeUpdated Outcome = iota
	OutcomeDeleted
	OutcomeMissing
)

// touch returns a timestamp strictly after prev.
func touch(prev time.Time, clock Clock) time.Time {
	now := clock()
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}

func indexOf(notes []models.Note, id string) int {
	return slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == id })
}

// CreateNote inserts an empty Todo note at the head of notes.
// The title is the "Untitled" placeholder.
func CreateNote(notes []models.Note, clock Clock, newID IDFunc) ([]models.Note, models.Note) {
	now := clock()
	n := models.Note{
		ID:        newID(),
		Title:     constants.UntitledTitle,
		Content:   "",
		CreatedAt: now,
		UpdatedAt: now,
		Status:    models.StatusTodo,
		Priority:  models.LevelLow,
		Effort:    models.LevelLow,
	}

	out := make([]models.Note, 0, len(notes)+1)
	out = append(out, n)
	out = append(out, notes...)
	return out, n
}

// UpdateNote replaces the note with note.ID. A note whose title and content
// are both blank is removed instead. The stored title falls back to
// "Untitled" when only the content is set.
func UpdateNote(notes []models.Note, note models.Note, clock Clock) ([]models.Note, Outcome) {
	i := indexOf(notes, note.ID)
	if i < 0 {
		return slices.Clone(notes), OutcomeMissing
	}

	if strings.TrimSpace(note.Title) == "" && strings.TrimSpace(note.Content) == "" {
		return DeleteNote(notes, note.ID), OutcomeDeleted
	}

	prev := notes[i]
	note.CreatedAt = prev.CreatedAt
	note.UpdatedAt = touch(prev.UpdatedAt, clock)
	if strings.TrimSpace(note.Title) == "" {
		note.Title = constants.UntitledTitle
	}
	if note.Status == "" {
		note.Status = prev.Status
	}
	if !note.Priority.Valid() {
		note.Priority = prev.Priority
	}
	if !note.Effort.Valid() {
		note.Effort = prev.Effort
	}

	out := slices.Clone(notes)
	out[i] = note
	return out, OutcomeUpdated
}

// ApplyEditorText fills a note from editor text: the first line is the
// title and the rest is the content.
func ApplyEditorText(note models.Note, text string, priority, effort models.Level, deadline *string) models.Note {
	title, content, _ := strings.Cut(strings.TrimSpace(text), "\n")
	note.Title = strings.TrimSpace(title)
	note.Content = strings.TrimSpace(content)
	note.Priority = priority
	note.Effort = effort
	note.Deadline = deadline
	return note
}

// EditorText is the inverse of ApplyEditorText. A placeholder note with no
// content yields an empty editor.
func EditorText(note models.Note) string {
	if note.Title == constants.UntitledTitle && note.Content == "" {
		return ""
	}
	parts := make([]string, 0, 2)
	for _, p := range []string{note.Title, note.Content} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n")
}

// DeleteNote removes the note with id. An unknown id is a no-op.
func DeleteNote(notes []models.Note, id string) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// ChangeStatus sets the status of note id. The bool reports whether the
// note moved into Completed from some other status.
func ChangeStatus(notes []models.Note, id string, status models.Status, clock Clock) ([]models.Note, bool) {
	i := indexOf(notes, id)
	if i < 0 {
		return slices.Clone(notes), false
	}

	out := slices.Clone(notes)
	prev := out[i].Status
	out[i].Status = status
	out[i].UpdatedAt = touch(out[i].UpdatedAt, clock)
	return out, status == models.StatusCompleted && prev != models.StatusCompleted
}

// CycleStatus advances note id along Todo, In Progress, Completed.
func CycleStatus(notes []models.Note, id string, clock Clock) ([]models.Note, bool) {
	i := indexOf(notes, id)
	if i < 0 {
		return slices.Clone(notes), false
	}
	return ChangeStatus(notes, id, notes[i].Status.Next(), clock)
}

// ChangePriorityEffort moves note id to another matrix quadrant.
func ChangePriorityEffort(notes []models.Note, id string, priority, effort models.Level, clock Clock) []models.Note {
	out := slices.Clone(notes)
	i := indexOf(out, id)
	if i < 0 {
		return out
	}

	out[i].Priority = priority
	out[i].Effort = effort
	out[i].UpdatedAt = touch(out[i].UpdatedAt, clock)
	return out
}

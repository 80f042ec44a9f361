// Package validation checks stored notes and habits for problems the
// loader would silently repair.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateNoteID       ConflictType = "duplicate_note_id"
	ConflictMissingNoteID         ConflictType = "missing_note_id"
	ConflictInvalidLevel          ConflictType = "invalid_level"
	ConflictInvalidDeadline       ConflictType = "invalid_deadline"
	ConflictTimestampOrder        ConflictType = "timestamp_order"
	ConflictUnknownStatus         ConflictType = "unknown_status"
	ConflictDuplicateHabitID      ConflictType = "duplicate_habit_id"
	ConflictBlankHabitName        ConflictType = "blank_habit_name"
	ConflictDuplicateHabitName    ConflictType = "duplicate_habit_name"
	ConflictInvalidCompletionDate ConflictType = "invalid_completion_date"
)

// Conflict represents a detected problem in notes or habits
type Conflict struct {
	Type        ConflictType
	Description string
	IDs         []string
	// Advisory conflicts are legal data that is probably unintended.
	Advisory bool
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// HasErrors ignores advisory conflicts.
func (vr *ValidationResult) HasErrors() bool {
	for _, c := range vr.Conflicts {
		if !c.Advisory {
			return true
		}
	}
	return false
}

// Merge appends other's conflicts.
func (vr *ValidationResult) Merge(other ValidationResult) {
	vr.Conflicts = append(vr.Conflicts, other.Conflicts...)
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		marker := "-"
		if c.Advisory {
			marker = "~"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, c.Description)
	}
	return b.String()
}

// Validator validates notes and habits
type Validator struct {
	// Columns are the statuses the board shows; notes with any other
	// status get an advisory conflict. Empty means the standard columns.
	Columns []models.Status
}

func New(columns []models.Status) *Validator {
	if len(columns) == 0 {
		columns = models.KanbanColumns
	}
	return &Validator{Columns: columns}
}

func (v *Validator) ValidateNotes(notes []models.Note) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	add := func(t ConflictType, advisory bool, id, format string, args ...any) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        t,
			Description: fmt.Sprintf(format, args...),
			IDs:         []string{id},
			Advisory:    advisory,
		})
	}

	seen := make(map[string]int, len(notes))
	for i, n := range notes {
		if n.ID == "" {
			add(ConflictMissingNoteID, false, "", "note at position %d has no id", i)
		} else if first, dup := seen[n.ID]; dup {
			add(ConflictDuplicateNoteID, false, n.ID, "notes at positions %d and %d share id %s; only the first is kept", first, i, n.ID)
		} else {
			seen[n.ID] = i
		}

		if !n.Priority.Valid() {
			add(ConflictInvalidLevel, false, n.ID, "note %s has invalid priority %q", n.ID, n.Priority)
		}
		if !n.Effort.Valid() {
			add(ConflictInvalidLevel, false, n.ID, "note %s has invalid effort %q", n.ID, n.Effort)
		}
		if n.Deadline != nil && !isValidDate(*n.Deadline) {
			add(ConflictInvalidDeadline, false, n.ID, "note %s has invalid deadline %q", n.ID, *n.Deadline)
		}
		if n.UpdatedAt.Before(n.CreatedAt) {
			add(ConflictTimestampOrder, false, n.ID, "note %s was updated before it was created", n.ID)
		}
		if n.Status != "" && !v.isColumn(n.Status) {
			add(ConflictUnknownStatus, true, n.ID, "note %s has status %q, which no board column shows", n.ID, n.Status)
		}
	}
	return result
}

func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	ids := make(map[string]bool, len(habits))
	names := make(map[string][]string, len(habits))
	for _, h := range habits {
		if ids[h.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitID,
				Description: fmt.Sprintf("more than one habit has id %s", h.ID),
				IDs:         []string{h.ID},
			})
		}
		ids[h.ID] = true

		name := strings.ToLower(strings.TrimSpace(h.Name))
		if name == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictBlankHabitName,
				Description: fmt.Sprintf("habit %s has no name", h.ID),
				IDs:         []string{h.ID},
			})
		} else {
			names[name] = append(names[name], h.ID)
		}

		for day := range h.Completions {
			if !isValidDate(day) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidCompletionDate,
					Description: fmt.Sprintf("habit %s has invalid completion date %q", h.ID, day),
					IDs:         []string{h.ID},
				})
			}
		}
	}

	for _, h := range habits {
		key := strings.ToLower(strings.TrimSpace(h.Name))
		if group := names[key]; len(group) > 1 && group[0] == h.ID {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitName,
				Description: fmt.Sprintf("%d habits are named %q", len(group), h.Name),
				IDs:         group,
				Advisory:    true,
			})
		}
	}
	return result
}

func (v *Validator) isColumn(s models.Status) bool {
	for _, c := range v.Columns {
		if c == s {
			return true
		}
	}
	return false
}

func isValidDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/noteboard/internal/models"
)

var now = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

func note(id string) models.Note {
	return models.Note{
		ID:        id,
		Title:     "Note " + id,
		CreatedAt: now,
		UpdatedAt: now,
		Status:    models.StatusTodo,
		Priority:  models.LevelLow,
		Effort:    models.LevelLow,
	}
}

func hasType(result ValidationResult, t ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == t {
			return true
		}
	}
	return false
}

func TestValidateNotes_NoConflicts(t *testing.T) {
	validator := New(nil)

	result := validator.ValidateNotes(models.SeedNotes(now))

	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got:\n%s", result.FormatReport())
	}
	if result.FormatReport() != "No conflicts detected." {
		t.Errorf("Unexpected report: %q", result.FormatReport())
	}
}

func TestValidateNotes_DuplicateIDs(t *testing.T) {
	validator := New(nil)

	result := validator.ValidateNotes([]models.Note{note("a"), note("b"), note("a")})

	if !hasType(result, ConflictDuplicateNoteID) {
		t.Fatal("Expected ConflictDuplicateNoteID conflict type")
	}
	if !strings.Contains(result.FormatReport(), "positions 0 and 2") {
		t.Errorf("Expected report to name both positions, got:\n%s", result.FormatReport())
	}
}

func TestValidateNotes_InvalidFields(t *testing.T) {
	validator := New(nil)

	badLevel := note("1")
	badLevel.Priority = "urgent"
	badDeadline := note("2")
	deadline := "2025-13-01"
	badDeadline.Deadline = &deadline
	backwards := note("3")
	backwards.UpdatedAt = now.Add(-time.Hour)
	noID := note("")

	result := validator.ValidateNotes([]models.Note{badLevel, badDeadline, backwards, noID})

	for _, want := range []ConflictType{
		ConflictInvalidLevel,
		ConflictInvalidDeadline,
		ConflictTimestampOrder,
		ConflictMissingNoteID,
	} {
		if !hasType(result, want) {
			t.Errorf("Expected %s conflict", want)
		}
	}
	if !result.HasErrors() {
		t.Error("Expected errors, not just advisories")
	}
}

func TestValidateNotes_UnknownStatusIsAdvisory(t *testing.T) {
	blocked := note("1")
	blocked.Status = "Blocked"

	result := New(nil).ValidateNotes([]models.Note{blocked})
	if !hasType(result, ConflictUnknownStatus) {
		t.Fatal("Expected ConflictUnknownStatus conflict type")
	}
	if result.HasErrors() {
		t.Error("Unknown status should be advisory")
	}
	if !strings.HasPrefix(strings.Split(result.FormatReport(), "\n")[1], "~ ") {
		t.Errorf("Expected advisory marker, got:\n%s", result.FormatReport())
	}

	// A custom column makes the status legitimate.
	custom := New([]models.Status{models.StatusTodo, "Blocked"})
	customResult := custom.ValidateNotes([]models.Note{blocked})
	if customResult.HasConflicts() {
		t.Error("Expected no conflicts with Blocked configured as a column")
	}
}

func TestValidateHabits(t *testing.T) {
	validator := New(nil)

	habits := []models.Habit{
		{ID: "h1", Name: "Read", Completions: map[string]bool{"2025-03-31": true}},
		{ID: "h2", Name: " read ", Completions: map[string]bool{}},
		{ID: "h2", Name: "", Completions: map[string]bool{"yesterday": true}},
	}

	result := validator.ValidateHabits(habits)

	for _, want := range []ConflictType{
		ConflictDuplicateHabitID,
		ConflictBlankHabitName,
		ConflictInvalidCompletionDate,
		ConflictDuplicateHabitName,
	} {
		if !hasType(result, want) {
			t.Errorf("Expected %s conflict", want)
		}
	}
	for _, c := range result.Conflicts {
		if c.Type == ConflictDuplicateHabitName && len(c.IDs) != 2 {
			t.Errorf("Expected duplicate name conflict to list 2 ids, got %v", c.IDs)
		}
	}
}

func TestValidateHabits_NoConflicts(t *testing.T) {
	habits := []models.Habit{
		{ID: "h1", Name: "Read", Completions: map[string]bool{"2025-03-31": true}},
		{ID: "h2", Name: "Run"},
	}

	result := New(nil).ValidateHabits(habits)
	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got:\n%s", result.FormatReport())
	}
}

func TestMerge(t *testing.T) {
	blocked := note("1")
	blocked.Status = "Blocked"
	v := New(nil)

	result := v.ValidateNotes([]models.Note{blocked})
	result.Merge(v.ValidateHabits([]models.Habit{{ID: "h", Name: ""}}))

	if len(result.Conflicts) != 2 {
		t.Fatalf("Expected 2 conflicts, got %d", len(result.Conflicts))
	}
	if !result.HasErrors() {
		t.Error("Blank habit name should count as an error")
	}
}

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/noteboard/internal/constants"
)

// Status drives kanban placement. It is stored as free text; only the
// values in KanbanColumns get a board column.
type Status string

const (
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// KanbanColumns is the fixed, ordered set of board columns.
var KanbanColumns = []Status{StatusTodo, StatusInProgress, StatusCompleted}

// Known reports whether s is one of the board columns.
func (s Status) Known() bool {
	for _, c := range KanbanColumns {
		if s == c {
			return true
		}
	}
	return false
}

// Next returns the status a click on the status tag moves to.
// Unrecognized statuses restart the cycle at Todo.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusTodo
	}
}

// ParseStatus matches s case-insensitively against the known statuses.
// "in-progress", "inprogress" and "done" are accepted as shorthands.
func ParseStatus(s string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	switch norm {
	case "todo", "to do":
		return StatusTodo, nil
	case "in progress", "in-progress", "inprogress", "doing":
		return StatusInProgress, nil
	case "completed", "complete", "done":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("invalid status %q (expected Todo, In Progress or Completed)", s)
}

// Level is the value set shared by priority and effort.
type Level string

const (
	LevelHigh Level = "High"
	LevelLow  Level = "Low"
)

// Valid reports whether l is High or Low.
func (l Level) Valid() bool {
	return l == LevelHigh || l == LevelLow
}

// ParseLevel matches s case-insensitively against High and Low.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h":
		return LevelHigh, nil
	case "low", "l":
		return LevelLow, nil
	}
	return "", fmt.Errorf("invalid level %q (expected High or Low)", s)
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Status    Status    `json:"status"`
	Priority  Level     `json:"priority"`
	Effort    Level     `json:"effort"`
	Deadline  *string   `json:"deadline"` // YYYY-MM-DD format, nil when unset
}

// Quadrant returns the matrix bucket the note belongs to.
func (n Note) Quadrant() Quadrant {
	return Quadrant{Priority: n.Priority, Effort: n.Effort}
}

// HasDeadline reports whether a deadline is set.
func (n Note) HasDeadline() bool {
	return n.Deadline != nil && *n.Deadline != ""
}

// DeadlineIn returns the deadline as midnight in loc.
func (n Note) DeadlineIn(loc *time.Location) (time.Time, bool) {
	if !n.HasDeadline() {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(constants.DateFormat, *n.Deadline, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// IsOverdue reports whether the deadline falls on a calendar day strictly
// before the day containing now. Both sides are compared at midnight in
// now's location, so a deadline of today is never overdue.
func (n Note) IsOverdue(now time.Time) bool {
	deadline, ok := n.DeadlineIn(now.Location())
	if !ok {
		return false
	}
	return deadline.Before(StartOfDay(now))
}

// Normalize restores the field invariants on a note read from storage.
func (n *Note) Normalize() {
	if strings.TrimSpace(n.Title) == "" {
		n.Title = constants.UntitledTitle
	}
	if n.Status == "" {
		n.Status = StatusTodo
	}
	if !n.Priority.Valid() {
		n.Priority = LevelLow
	}
	if !n.Effort.Valid() {
		n.Effort = LevelLow
	}
	if n.Deadline != nil {
		if _, err := time.Parse(constants.DateFormat, *n.Deadline); err != nil {
			n.Deadline = nil
		}
	}
	if n.UpdatedAt.Before(n.CreatedAt) {
		n.UpdatedAt = n.CreatedAt
	}
}

// ParseDeadline validates a YYYY-MM-DD date. An empty string clears the deadline.
func ParseDeadline(s string) (*string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return &s, nil
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayKey formats t as a completion/deadline key.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

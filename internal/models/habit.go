package models

import (
	"strings"
	"time"

	"github.com/julianstephens/noteboard/internal/constants"
)

// Habit is a named daily goal. Completions is a sparse set of day keys
// (YYYY-MM-DD); a key mapped to true means the habit was done that day.
type Habit struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Completions map[string]bool `json:"completions"`
}

// Completed reports whether day is marked.
func (h Habit) Completed(day string) bool {
	return h.Completions[day]
}

// Normalize trims the name, names a blank habit Untitled and drops days
// stored as false. Applied to everything read from the store.
func (h *Habit) Normalize() {
	h.Name = strings.TrimSpace(h.Name)
	if h.Name == "" {
		h.Name = constants.UntitledTitle
	}
	if h.Completions == nil {
		h.Completions = map[string]bool{}
	}
	for day, done := range h.Completions {
		if !done {
			delete(h.Completions, day)
		}
	}
}

// Streak counts consecutive completed days ending today, or ending
// yesterday when today is not yet marked.
func (h Habit) Streak(today time.Time) int {
	day := StartOfDay(today)
	if !h.Completed(DayKey(day)) {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for h.Completed(DayKey(day)) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// Clone returns a copy whose completion set can be modified independently.
func (h Habit) Clone() Habit {
	c := h
	c.Completions = make(map[string]bool, len(h.Completions))
	for k, v := range h.Completions {
		c.Completions[k] = v
	}
	return c
}

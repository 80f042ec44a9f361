package models

import "time"

// SeedNotes returns the welcome notes shown on a fresh store. Deadlines are
// relative to now so the overdue highlight is visible from the start.
func SeedNotes(now time.Time) []Note {
	day := func(offset int) *string {
		d := DayKey(now.AddDate(0, 0, offset))
		return &d
	}
	note := func(id, title, content string, status Status, priority, effort Level, deadline *string) Note {
		return Note{
			ID:        id,
			Title:     title,
			Content:   content,
			CreatedAt: now,
			UpdatedAt: now,
			Status:    status,
			Priority:  priority,
			Effort:    effort,
			Deadline:  deadline,
		}
	}
	return []Note{
		note("1", "Welcome to noteboard!", "A small, fast notes manager for the terminal.", StatusTodo, LevelHigh, LevelLow, day(7)),
		note("2", "Plan new feature", "Create, edit and delete notes, then switch between grid and list views.", StatusInProgress, LevelHigh, LevelHigh, day(-2)),
		note("3", "Review completed tasks", "Notes also live on a kanban board. Grab one with space and drop it in another column.", StatusCompleted, LevelLow, LevelLow, nil),
		note("4", "Organize documentation", "This task can be delegated.", StatusTodo, LevelLow, LevelHigh, day(30)),
	}
}

package controller

import (
	"github.com/julianstephens/noteboard/internal/commands"
	"github.com/julianstephens/noteboard/internal/models"
)

// CreateHabit adds a habit. Blank names are ignored and report false.
func (c *Controller) CreateHabit(name string) (models.Habit, bool) {
	habits := commands.CreateHabit(c.state.Habits, name, c.newID)
	if len(habits) == len(c.state.Habits) {
		return models.Habit{}, false
	}
	c.setHabits(habits)
	return habits[len(habits)-1], true
}

// RenameHabit renames habit id. Blank names are ignored.
func (c *Controller) RenameHabit(id, name string) error {
	h, ok := c.Habit(id)
	if !ok {
		return ErrHabitNotFound
	}
	habits := commands.RenameHabit(c.state.Habits, id, name)
	if updated, _ := findHabit(habits, id); updated.Name == h.Name {
		return nil
	}
	c.setHabits(habits)
	return nil
}

// DeleteHabit removes habit id.
func (c *Controller) DeleteHabit(id string) {
	if _, ok := c.Habit(id); !ok {
		return
	}
	c.setHabits(commands.DeleteHabit(c.state.Habits, id))
}

// ToggleCompletion flips habit id on day and reports the new value.
func (c *Controller) ToggleCompletion(id, day string) (bool, error) {
	if _, ok := c.Habit(id); !ok {
		return false, ErrHabitNotFound
	}
	habits := commands.ToggleCompletion(c.state.Habits, id, day)
	c.setHabits(habits)
	h, _ := findHabit(habits, id)
	return h.Completed(day), nil
}

func findHabit(habits []models.Habit, id string) (models.Habit, bool) {
	for _, h := range habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

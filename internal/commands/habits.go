package commands

import (
	"slices"
	"strings"

	"github.com/julianstephens/noteboard/internal/models"
)

func habitIndex(habits []models.Habit, id string) int {
	return slices.IndexFunc(habits, func(h models.Habit) bool { return h.ID == id })
}

// CreateHabit appends a habit named name. Blank names are ignored.
func CreateHabit(habits []models.Habit, name string, newID IDFunc) []models.Habit {
	name = strings.TrimSpace(name)
	if name == "" {
		return slices.Clone(habits)
	}

	out := slices.Clone(habits)
	return append(out, models.Habit{
		ID:          newID(),
		Name:        name,
		Completions: map[string]bool{},
	})
}

// RenameHabit sets the name of habit id. Blank names are ignored.
func RenameHabit(habits []models.Habit, id, name string) []models.Habit {
	out := slices.Clone(habits)
	name = strings.TrimSpace(name)
	if name == "" {
		return out
	}

	if i := habitIndex(out, id); i >= 0 {
		out[i].Name = name
	}
	return out
}

// DeleteHabit removes habit id.
func DeleteHabit(habits []models.Habit, id string) []models.Habit {
	out := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ID != id {
			out = append(out, h)
		}
	}
	return out
}

// ToggleCompletion flips whether habit id is completed on day.
func ToggleCompletion(habits []models.Habit, id, day string) []models.Habit {
	out := slices.Clone(habits)
	i := habitIndex(out, id)
	if i < 0 {
		return out
	}

	h := out[i].Clone()
	if h.Completed(day) {
		delete(h.Completions, day)
	} else {
		h.Completions[day] = true
	}
	out[i] = h
	return out
}

package models

import (
	"fmt"
	"strings"
)

type ViewMode string

const (
	ViewGrid         ViewMode = "GRID"
	ViewList         ViewMode = "LIST"
	ViewBoard        ViewMode = "BOARD"
	ViewMatrix       ViewMode = "MATRIX"
	ViewHabitTracker ViewMode = "HABIT_TRACKER"
)

// ViewModes lists every view in tab order.
var ViewModes = []ViewMode{ViewGrid, ViewList, ViewBoard, ViewMatrix, ViewHabitTracker}

func (v ViewMode) Valid() bool {
	for _, m := range ViewModes {
		if v == m {
			return true
		}
	}
	return false
}

// ShowsSearch reports whether the search input is available in this view.
func (v ViewMode) ShowsSearch() bool {
	return v == ViewGrid || v == ViewList
}

func (v ViewMode) Label() string {
	switch v {
	case ViewGrid:
		return "Grid"
	case ViewList:
		return "List"
	case ViewBoard:
		return "Board"
	case ViewMatrix:
		return "Matrix"
	case ViewHabitTracker:
		return "Habits"
	default:
		return string(v)
	}
}

// ParseViewMode accepts the stored identifiers as well as the tab labels.
func ParseViewMode(s string) (ViewMode, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	switch norm {
	case "HABITS", "HABIT", "TRACKER":
		return ViewHabitTracker, nil
	case "KANBAN":
		return ViewBoard, nil
	}
	if v := ViewMode(norm); v.Valid() {
		return v, nil
	}
	return "", fmt.Errorf("invalid view mode %q (expected grid, list, board, matrix or habits)", s)
}

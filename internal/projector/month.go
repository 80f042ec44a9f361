package projector

import (
	"time"

	"github.com/julianstephens/noteboard/internal/models"
)

// Day is one column of the habit tracker grid.
type Day struct {
	Key     string
	Date    time.Time
	IsToday bool
}

// HabitRow is one habit across every day of the month.
type HabitRow struct {
	Habit     models.Habit
	Completed []bool
	Streak    int
}

// Month is the habit tracker projection for a calendar month.
type Month struct {
	Start time.Time
	Days  []Day
	Rows  []HabitRow
}

// MonthGrid lays out habits against the days of the month containing month.
// Rows keep the habit collection's order.
func MonthGrid(habits []models.Habit, month, today time.Time) Month {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	todayKey := models.DayKey(today)

	var days []Day
	for d := start; d.Month() == start.Month(); d = d.AddDate(0, 0, 1) {
		key := models.DayKey(d)
		days = append(days, Day{Key: key, Date: d, IsToday: key == todayKey})
	}

	rows := make([]HabitRow, 0, len(habits))
	for _, h := range habits {
		row := HabitRow{Habit: h, Completed: make([]bool, len(days)), Streak: h.Streak(today)}
		for i, d := range days {
			row.Completed[i] = h.Completed(d.Key)
		}
		rows = append(rows, row)
	}

	return Month{Start: start, Days: days, Rows: rows}
}

// Package habits holds the habit tracker commands.
package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a habit."`
	Rename HabitRenameCmd `cmd:"" help:"Rename a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
	Toggle HabitToggleCmd `cmd:"" help:"Mark or unmark a habit for a day."`
	List   HabitListCmd   `cmd:"" help:"List habits with their current streak."`
	Log    HabitLogCmd    `cmd:"" help:"Show a month of habit history."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()
	h, ok := ctrl.CreateHabit(c.Name)
	if !ok {
		return fmt.Errorf("habit name cannot be empty")
	}
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ Added habit %s (%s)\n", h.Name, h.ID)
	return nil
}

type HabitRenameCmd struct {
	Ref  string `arg:"" help:"Habit id, id prefix or name."`
	Name string `arg:"" help:"New name."`
}

func (c *HabitRenameCmd) Run(ctx *cli.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	ctrl := ctx.Controller()
	h, err := cli.FindHabit(ctrl.Habits(), c.Ref)
	if err != nil {
		return err
	}
	if err := ctrl.RenameHabit(h.ID, c.Name); err != nil {
		return err
	}
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ Renamed %s to %s\n", h.Name, strings.TrimSpace(c.Name))
	return nil
}

type HabitDeleteCmd struct {
	Ref string `arg:"" help:"Habit id, id prefix or name."`
	Yes bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()
	h, err := cli.FindHabit(ctrl.Habits(), c.Ref)
	if err != nil {
		return err
	}
	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete habit %q and all of its history?", h.Name))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Delete cancelled.")
			return nil
		}
	}
	ctrl.DeleteHabit(h.ID)
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ Deleted habit %s\n", h.Name)
	return nil
}

type HabitToggleCmd struct {
	Ref string `arg:"" help:"Habit id, id prefix or name."`
	Day string `short:"d" help:"Day to toggle (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()
	day, err := utils.ParseDay(c.Day, ctrl.Now())
	if err != nil {
		return err
	}
	h, err := cli.FindHabit(ctrl.Habits(), c.Ref)
	if err != nil {
		return err
	}
	done, err := ctrl.ToggleCompletion(h.ID, day)
	if err != nil {
		return err
	}
	if err := ctx.Commit(); err != nil {
		return err
	}
	if done {
		ctx.Printf("✓ %s done on %s\n", h.Name, day)
	} else {
		ctx.Printf("○ %s cleared on %s\n", h.Name, day)
	}
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()
	habits := ctrl.Habits()
	if len(habits) == 0 {
		ctx.Println("No habits yet. Add one with 'noteboard habit add'.")
		return nil
	}

	now := ctrl.Now()
	today := models.DayKey(now)
	t := cli.NewTable(ctx.Stdout(), "ID", "Name", "Today", "Streak")
	for _, h := range habits {
		mark := "·"
		if h.Completed(today) {
			mark = text.FgGreen.Sprint("●")
		}
		t.AppendRow(table.Row{h.ID, h.Name, mark, h.Streak(now)})
	}
	t.Render()
	return nil
}

type HabitLogCmd struct {
	Month string `short:"m" help:"Month to show (YYYY-MM). Defaults to the current month."`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()
	now := ctrl.Now()
	month := utils.FirstOfMonth(now)
	if c.Month != "" {
		m, err := time.ParseInLocation("2006-01", c.Month, now.Location())
		if err != nil {
			return fmt.Errorf("invalid month: %s (expected YYYY-MM)", c.Month)
		}
		month = m
	}

	grid := ctrl.HabitMonth(month)
	ctx.Println(grid.Start.Format("January 2006"))
	if len(grid.Rows) == 0 {
		ctx.Println("No habits yet.")
		return nil
	}

	header := table.Row{text.FgGreen.Sprint("Habit")}
	for _, d := range grid.Days {
		label := fmt.Sprintf("%02d", d.Date.Day())
		if d.IsToday {
			label = text.FgHiYellow.Sprint(label)
		}
		header = append(header, label)
	}
	header = append(header, text.FgGreen.Sprint("Streak"))

	t := table.NewWriter()
	t.SetOutputMirror(ctx.Stdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	for _, row := range grid.Rows {
		r := table.Row{row.Habit.Name}
		for _, done := range row.Completed {
			if done {
				r = append(r, text.FgGreen.Sprint("●"))
			} else {
				r = append(r, "·")
			}
		}
		r = append(r, row.Streak)
		t.AppendRow(r)
	}
	t.Render()
	return nil
}

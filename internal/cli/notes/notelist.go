package notes

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/projector"
	"github.com/julianstephens/noteboard/internal/utils"
)

type NoteListCmd struct {
	Status  string `short:"s" help:"Only show notes with this status."`
	Search  string `short:"q" help:"Case-insensitive match on title and content."`
	Overdue bool   `help:"Only show notes past their deadline."`
}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()
	now := ctrl.Now()

	var status models.Status
	if c.Status != "" {
		status = parseStatus(c.Status)
	}

	var notes []models.Note
	for _, n := range projector.Visible(ctrl.Notes(), c.Search) {
		if status != "" && n.Status != status {
			continue
		}
		if c.Overdue && !n.IsOverdue(now) {
			continue
		}
		notes = append(notes, n)
	}

	if len(notes) == 0 {
		ctx.Println("No notes found.")
		return nil
	}

	t := cli.NewTable(ctx.Stdout(), "ID", "Title", "Status", "Priority", "Effort", "Deadline", "Edited")
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 40},
	})
	for _, n := range notes {
		deadline := "-"
		if n.HasDeadline() {
			deadline = *n.Deadline
			if n.IsOverdue(now) {
				deadline = text.FgHiRed.Sprintf("%s (overdue)", deadline)
			}
		}
		t.AppendRow(table.Row{
			n.ID,
			n.Title,
			n.Status,
			n.Priority,
			n.Effort,
			deadline,
			utils.FormatRelativeDay(n.UpdatedAt, now),
		})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d note(s)", len(notes))})
	t.Render()
	return nil
}

package notes

import (
	"strings"

	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/constants"
)

type NoteShowCmd struct {
	Ref string `arg:"" help:"Note id, id prefix or title."`
}

func (c *NoteShowCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()
	n, err := cli.FindNote(ctrl.Notes(), c.Ref)
	if err != nil {
		return err
	}
	now := ctrl.Now()

	ctx.Printf("%s\n", n.Title)
	ctx.Printf("  ID:       %s\n", n.ID)
	ctx.Printf("  Status:   %s\n", n.Status)
	ctx.Printf("  Priority: %s\n", n.Priority)
	ctx.Printf("  Effort:   %s (%s)\n", n.Effort, n.Quadrant().Label())
	if n.HasDeadline() {
		suffix := ""
		if n.IsOverdue(now) {
			suffix = " (overdue)"
		}
		ctx.Printf("  Deadline: %s%s\n", *n.Deadline, suffix)
	}
	ctx.Printf("  Created:  %s\n", n.CreatedAt.In(now.Location()).Format(constants.DateFormat+" 15:04"))
	ctx.Printf("  Updated:  %s\n", n.UpdatedAt.In(now.Location()).Format(constants.DateFormat+" 15:04"))
	if strings.TrimSpace(n.Content) != "" {
		ctx.Printf("\n%s\n", n.Content)
	}
	return nil
}

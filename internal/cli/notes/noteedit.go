package notes

import (
	"fmt"

	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/commands"
	"github.com/julianstephens/noteboard/internal/models"
)

type NoteEditCmd struct {
	Ref           string  `arg:"" help:"Note id, id prefix or title."`
	Title         *string `help:"New title."`
	Content       *string `short:"c" help:"New body."`
	Priority      string  `short:"p" help:"Priority (high|low)."`
	Effort        string  `short:"e" help:"Effort (high|low)."`
	Deadline      string  `short:"d" help:"Deadline (YYYY-MM-DD)."`
	ClearDeadline bool    `help:"Remove the deadline."`
}

func (c *NoteEditCmd) Validate() error {
	if c.Deadline != "" && c.ClearDeadline {
		return fmt.Errorf("--deadline and --clear-deadline cannot be used together")
	}
	for name, v := range map[string]string{"priority": c.Priority, "effort": c.Effort} {
		if v == "" {
			continue
		}
		if _, err := models.ParseLevel(v); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	if _, err := models.ParseDeadline(c.Deadline); err != nil {
		return err
	}
	return nil
}

func (c *NoteEditCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()
	n, err := cli.FindNote(ctrl.Notes(), c.Ref)
	if err != nil {
		return err
	}

	if c.Title != nil {
		n.Title = *c.Title
	}
	if c.Content != nil {
		n.Content = *c.Content
	}
	if c.Priority != "" {
		n.Priority, _ = models.ParseLevel(c.Priority)
	}
	if c.Effort != "" {
		n.Effort, _ = models.ParseLevel(c.Effort)
	}
	if c.Deadline != "" {
		n.Deadline, _ = models.ParseDeadline(c.Deadline)
	}
	if c.ClearDeadline {
		n.Deadline = nil
	}

	outcome, err := ctrl.UpdateNote(n)
	if err != nil {
		return err
	}
	if err := ctx.Commit(); err != nil {
		return err
	}
	if outcome == commands.OutcomeDeleted {
		ctx.Printf("✓ Note %s was left empty and has been deleted\n", n.ID)
		return nil
	}
	ctx.Printf("✓ Updated note %s\n", n.ID)
	return nil
}

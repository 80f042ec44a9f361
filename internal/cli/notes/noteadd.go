package notes

import (
	"fmt"
	"strings"

	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/commands"
	"github.com/julianstephens/noteboard/internal/models"
)

type NoteAddCmd struct {
	Title    string `arg:"" help:"Note title."`
	Content  string `short:"c" help:"Note body."`
	Status   string `short:"s" help:"Status (todo, in-progress, completed). Other values are kept as custom board columns." default:"todo"`
	Priority string `short:"p" help:"Priority (high|low)." default:"low"`
	Effort   string `short:"e" help:"Effort (high|low)." default:"low"`
	Deadline string `short:"d" help:"Deadline (YYYY-MM-DD)."`
}

func (c *NoteAddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" && strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("a note needs a title or content")
	}
	if _, err := models.ParseLevel(c.Priority); err != nil {
		return fmt.Errorf("invalid priority: %w", err)
	}
	if _, err := models.ParseLevel(c.Effort); err != nil {
		return fmt.Errorf("invalid effort: %w", err)
	}
	if _, err := models.ParseDeadline(c.Deadline); err != nil {
		return err
	}
	return nil
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()
	priority, _ := models.ParseLevel(c.Priority)
	effort, _ := models.ParseLevel(c.Effort)
	deadline, _ := models.ParseDeadline(c.Deadline)

	n := ctrl.CreateNote()
	n.Title = strings.TrimSpace(c.Title)
	n.Content = c.Content
	n.Priority = priority
	n.Effort = effort
	n.Deadline = deadline
	n.Status = parseStatus(c.Status)

	outcome, err := ctrl.UpdateNote(n)
	if err != nil {
		return err
	}
	if outcome == commands.OutcomeDeleted {
		return fmt.Errorf("a note needs a title or content")
	}
	if err := ctx.Commit(); err != nil {
		return err
	}

	saved, _ := ctrl.Note(n.ID)
	ctx.Printf("✓ Added note %s (%s)\n", saved.Title, saved.ID)
	return nil
}

// parseStatus accepts the known spellings and keeps anything else as is.
func parseStatus(s string) models.Status {
	if st, err := models.ParseStatus(s); err == nil {
		return st
	}
	return models.Status(strings.TrimSpace(s))
}

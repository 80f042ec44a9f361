package notes

import (
	"fmt"
	"strings"

	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/notifier"
)

// NoteStatusCmd sets a note's status, or advances it one step when no
// status is given.
type NoteStatusCmd struct {
	Ref    string `arg:"" help:"Note id, id prefix or title."`
	Status string `arg:"" optional:"" help:"New status. Omit to advance Todo, In Progress, Completed."`
}

func (c *NoteStatusCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()
	n, err := cli.FindNote(ctrl.Notes(), c.Ref)
	if err != nil {
		return err
	}

	var completed bool
	if strings.TrimSpace(c.Status) == "" {
		completed, err = ctrl.CycleStatus(n.ID)
	} else {
		completed, err = ctrl.ChangeStatus(n.ID, parseStatus(c.Status))
	}
	if err != nil {
		return err
	}
	if err := ctx.Commit(); err != nil {
		return err
	}

	updated, _ := ctrl.Note(n.ID)
	if completed {
		ctx.Println(notifier.CelebrationText(updated))
		return nil
	}
	ctx.Printf("✓ %s is now %s\n", updated.Title, updated.Status)
	return nil
}

// NoteMoveCmd places a note in a priority matrix quadrant.
type NoteMoveCmd struct {
	Ref      string `arg:"" help:"Note id, id prefix or title."`
	Quadrant string `arg:"" help:"Quadrant: do-first, schedule, delegate or eliminate."`
}

func (c *NoteMoveCmd) Run(ctx *cli.Context) error {
	q, err := parseQuadrant(c.Quadrant)
	if err != nil {
		return err
	}
	ctrl := ctx.Controller()
	n, err := cli.FindNote(ctrl.Notes(), c.Ref)
	if err != nil {
		return err
	}

	if err := ctrl.ChangePriorityEffort(n.ID, q.Priority, q.Effort); err != nil {
		return err
	}
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ Moved %s to %s (%s)\n", n.Title, q.Label(), q.Caption())
	return nil
}

func parseQuadrant(s string) (models.Quadrant, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	for _, q := range models.Quadrants() {
		if strings.ToLower(strings.ReplaceAll(q.Label(), " ", "")) == norm {
			return q, nil
		}
	}
	return models.Quadrant{}, fmt.Errorf("invalid quadrant %q (expected do-first, schedule, delegate or eliminate)", s)
}

package notes

import (
	"fmt"

	"github.com/julianstephens/noteboard/internal/cli"
)

type NoteDeleteCmd struct {
	Ref string `arg:"" help:"Note id, id prefix or title."`
	Yes bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()
	n, err := cli.FindNote(ctrl.Notes(), c.Ref)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete note %q?", n.Title))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Delete cancelled.")
			return nil
		}
	}

	ctrl.DeleteNote(n.ID)
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ Deleted note %s\n", n.Title)
	return nil
}

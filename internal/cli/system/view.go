package system

import (
	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/models"
)

type ViewCmd struct {
	Get ViewGetCmd `cmd:"" help:"Show the view the TUI opens with." default:"1"`
	Set ViewSetCmd `cmd:"" help:"Choose the view the TUI opens with."`
}

type ViewGetCmd struct{}

func (c *ViewGetCmd) Run(ctx *cli.Context) error {
	mode := ctx.Controller().ViewMode()
	ctx.Printf("%s (%s)\n", mode.Label(), mode)
	return nil
}

type ViewSetCmd struct {
	Mode string `arg:"" help:"grid, list, board, matrix or habits."`
}

func (c *ViewSetCmd) Run(ctx *cli.Context) error {
	mode, err := models.ParseViewMode(c.Mode)
	if err != nil {
		return err
	}
	if err := ctx.Controller().SetViewMode(mode); err != nil {
		return err
	}
	if err := ctx.Commit(); err != nil {
		return err
	}
	ctx.Printf("✓ View set to %s\n", mode.Label())
	return nil
}

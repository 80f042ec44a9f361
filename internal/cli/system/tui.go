package system

import (
	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Backup before anything is written this session.
	ctx.PerformAutomaticBackup()

	return tui.Run(ctx.Controller(), tui.Options{ExportDir: ctx.Settings.ExportDir})
}

package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/controller"
)

type ExportCmd struct {
	Output string `short:"o" help:"Directory to write the CSV file into. Defaults to export_dir from the settings file, then the working directory." type:"path"`
	Stdout bool   `help:"Write the CSV to standard output instead of a file."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	ctrl := ctx.Controller()

	if c.Stdout {
		if err := ctrl.Export(ctx.Stdout()); err != nil {
			return exportError(err)
		}
		return nil
	}

	dir := c.Output
	if dir == "" {
		dir = ctx.Settings.ExportDir
	}
	if dir == "" {
		dir = "."
	}
	path, err := ctrl.ExportToFile(dir)
	if err != nil {
		return exportError(err)
	}
	ctx.Printf("✓ Exported %d note(s) to %s\n", len(ctrl.Notes()), path)
	return nil
}

func exportError(err error) error {
	if errors.Is(err, controller.ErrNothingToExport) {
		return fmt.Errorf("nothing to export: there are no notes")
	}
	return fmt.Errorf("export failed: %w", err)
}

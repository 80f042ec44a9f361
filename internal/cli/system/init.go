package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/config"
	"github.com/julianstephens/noteboard/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing database before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized noteboard storage at: %s\n", ctx.Store.GetConfigPath())

	if ctx.SettingsPath == "" {
		return nil
	}
	if _, err := os.Stat(ctx.SettingsPath); errors.Is(err, os.ErrNotExist) {
		if err := config.Save(ctx.SettingsPath, ctx.Settings); err != nil {
			return err
		}
		ctx.Printf("Wrote settings file: %s\n", ctx.SettingsPath)
	}
	return nil
}

// reset removes a file-backed store. PostgreSQL data is left alone.
func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*storage.PostgresStore); ok {
		return fmt.Errorf("--force is not supported for PostgreSQL; drop the noteboard schema instead")
	}
	dbPath := ctx.Store.GetConfigPath()
	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

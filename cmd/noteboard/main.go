package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/cli/backups"
	"github.com/julianstephens/noteboard/internal/cli/habits"
	"github.com/julianstephens/noteboard/internal/cli/notes"
	"github.com/julianstephens/noteboard/internal/cli/system"
	"github.com/julianstephens/noteboard/internal/config"
	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/errors"
	"github.com/julianstephens/noteboard/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Database path, *.json path or PostgreSQL connection string. PostgreSQL passwords must come from the OS keyring, NOTEBOARD_DB_CONNECTION or .pgpass." env:"NOTEBOARD_CONFIG"`
	Settings string `help:"Settings file path." env:"NOTEBOARD_SETTINGS" type:"path"`
	Debug    bool   `help:"Enable debug logging." env:"NOTEBOARD_DEBUG"`

	Init     system.InitCmd     `cmd:"" help:"Initialize noteboard storage."`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd `cmd:"" help:"Check stored notes and habits for problems."`
	Note     notes.NoteCmd      `cmd:"" help:"Manage notes."`
	Habit    habits.HabitCmd    `cmd:"" help:"Manage habits and habit tracking."`
	View     system.ViewCmd     `cmd:"" help:"Show or change the TUI's starting view."`
	Export   system.ExportCmd   `cmd:"" help:"Export notes as CSV."`
	Keyring  system.KeyringCmd  `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Notes, kanban board, priority matrix and habit tracker for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	settingsPath := CLI.Settings
	if settingsPath == "" {
		settingsPath = config.Path()
	}
	settings, err := config.Load(settingsPath)
	if err != nil {
		errors.Fatal(err)
	}

	command := ""
	if ctx.Selected() != nil {
		command = ctx.Selected().Name
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug || settings.Debug,
		ConfigDir: filepath.Dir(settingsPath),
		Stderr:    command != "tui",
	}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	store, err := cli.ResolveStore(CLI.Config, settings)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:        store,
		Settings:     settings,
		SettingsPath: settingsPath,
	}

	// init creates the store itself.
	if command != "init" && !isKeyringCommand(ctx) {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	if closeErr := appCtx.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	errors.Fatal(err)
}

// isKeyringCommand reports whether the keyring is being managed, which
// must work before any store is reachable.
func isKeyringCommand(ctx *kong.Context) bool {
	for _, p := range ctx.Path {
		if p.Command != nil && p.Command.Name == "keyring" {
			return true
		}
	}
	return false
}

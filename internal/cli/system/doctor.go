package system

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/noteboard/internal/backup"
	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/config"
	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/keyring"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/storage"
	"github.com/julianstephens/noteboard/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	run  func(*cli.Context) error
	// needsStore skips the check when the store is unreachable.
	needsStore bool
}

var checks = []check{
	{name: "Store reachable", run: checkStoreReachable},
	{name: "Settings file", run: checkSettings},
	{name: "Stored notes", run: checkNotes, needsStore: true},
	{name: "Stored habits", run: checkHabits, needsStore: true},
	{name: "Stored view mode", run: checkViewMode, needsStore: true},
	{name: "Backups present", run: checkBackupsPresent},
	{name: "OS keyring", run: checkKeyring},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failed := 0
	reachable := true
	for _, c := range checks {
		if c.needsStore && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (store not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		var warn warningError
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case errors.As(err, &warn):
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %s\n", warn.msg)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			failed++
			if c.name == "Store reachable" {
				reachable = false
			}
		}
	}

	ctx.Println()
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	ctx.Println("All checks passed.")
	return nil
}

// warningError marks a finding that should not fail the run.
type warningError struct{ msg string }

func (w warningError) Error() string { return w.msg }

func warning(format string, args ...any) error {
	return warningError{msg: fmt.Sprintf(format, args...)}
}

func checkStoreReachable(ctx *cli.Context) error {
	if _, err := ctx.Store.Keys(); err != nil {
		return fmt.Errorf("cannot read %s: %w", ctx.Store.GetConfigPath(), err)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	if ctx.SettingsPath == "" {
		return nil
	}
	_, err := config.Load(ctx.SettingsPath)
	return err
}

// decode reads key and unmarshals it into v. A missing key is reported
// as a warning since the defaults apply.
func decode(ctx *cli.Context, key string, v any) error {
	data, err := ctx.Store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return warning("%s is not stored yet; defaults will be used", key)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s is corrupted and will be replaced by defaults: %w", key, err)
	}
	return nil
}

func checkNotes(ctx *cli.Context) error {
	var notes []models.Note
	if err := decode(ctx, constants.NotesKey, &notes); err != nil {
		return err
	}
	result := validation.New(ctx.Settings.Columns()).ValidateNotes(notes)
	if result.HasConflicts() {
		return warning("%d issue(s), repaired on next load; run 'noteboard validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkHabits(ctx *cli.Context) error {
	var habits []models.Habit
	if err := decode(ctx, constants.HabitsKey, &habits); err != nil {
		return err
	}
	result := validation.New(nil).ValidateHabits(habits)
	switch {
	case result.HasErrors():
		return fmt.Errorf("%d issue(s); run 'noteboard validate' for details", len(result.Conflicts))
	case result.HasConflicts():
		return warning("%d advisory issue(s); run 'noteboard validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkViewMode(ctx *cli.Context) error {
	var mode models.ViewMode
	if err := decode(ctx, constants.ViewModeKey, &mode); err != nil {
		return err
	}
	if !mode.Valid() {
		return warning("unknown view mode %q; the grid view will be used", mode)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*storage.SQLiteStore); !ok {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return warning("failed to list backups: %v", err)
	}
	if len(backups) == 0 {
		return warning("no backups found in %s", mgr.Dir())
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*storage.PostgresStore); !ok {
		return nil
	}
	if !keyring.IsAvailable() {
		return warning("OS keyring is not available; use %s or .pgpass", constants.ConnectionEnvVar)
	}
	return nil
}

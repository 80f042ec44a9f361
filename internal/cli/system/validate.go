package system

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/storage"
	"github.com/julianstephens/noteboard/internal/validation"
)

type ValidateCmd struct {
	Strict bool `help:"Fail on advisory findings too."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	var notes []models.Note
	if err := loadRaw(ctx, constants.NotesKey, &notes); err != nil {
		return err
	}
	var habits []models.Habit
	if err := loadRaw(ctx, constants.HabitsKey, &habits); err != nil {
		return err
	}

	v := validation.New(ctx.Settings.Columns())
	result := v.ValidateNotes(notes)
	result.Merge(v.ValidateHabits(habits))

	ctx.Printf("Checked %d note(s) and %d habit(s).\n", len(notes), len(habits))
	ctx.Printf("%s", result.FormatReport())
	if !result.HasConflicts() {
		ctx.Println()
	}

	if result.HasErrors() || (c.Strict && result.HasConflicts()) {
		return fmt.Errorf("validation found %d issue(s)", len(result.Conflicts))
	}
	return nil
}

// loadRaw leaves v empty when key has never been written.
func loadRaw(ctx *cli.Context, key string, v any) error {
	data, err := ctx.Store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s is corrupted: %w", key, err)
	}
	return nil
}

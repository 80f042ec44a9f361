package habits

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/julianstephens/noteboard/internal/cli/clitest"
)

func TestHabitLifecycle(t *testing.T) {
	ctx, out := clitest.NewContext(t, "")

	require.NoError(t, (&HabitAddCmd{Name: "  Read  "}).Run(ctx))
	h, ok := ctx.Controller().Habit("new-1")
	require.True(t, ok)
	require.Equal(t, "Read", h.Name)

	require.NoError(t, (&HabitToggleCmd{Ref: "read", Day: "2025-04-01"}).Run(ctx))
	h, _ = ctx.Controller().Habit("new-1")
	require.True(t, h.Completed("2025-04-01"))
	require.Contains(t, out.String(), "Read done on 2025-04-01")

	require.NoError(t, (&HabitToggleCmd{Ref: "read", Day: "2025-04-01"}).Run(ctx))
	h, _ = ctx.Controller().Habit("new-1")
	require.False(t, h.Completed("2025-04-01"))

	require.NoError(t, (&HabitRenameCmd{Ref: "new-1", Name: "Read a chapter"}).Run(ctx))
	h, _ = ctx.Controller().Habit("new-1")
	require.Equal(t, "Read a chapter", h.Name)

	require.NoError(t, (&HabitDeleteCmd{Ref: "read a chapter", Yes: true}).Run(ctx))
	require.Empty(t, ctx.Controller().Habits())
}

func TestHabitAddRejectsBlank(t *testing.T) {
	ctx, _ := clitest.NewContext(t, "")
	require.Error(t, (&HabitAddCmd{Name: "   "}).Run(ctx))
	require.Empty(t, ctx.Controller().Habits())
}

func TestHabitToggleDefaultsToToday(t *testing.T) {
	ctx, _ := clitest.NewContext(t, "")
	require.NoError(t, (&HabitAddCmd{Name: "Stretch"}).Run(ctx))
	require.NoError(t, (&HabitToggleCmd{Ref: "stretch"}).Run(ctx))

	h, _ := ctx.Controller().Habit("new-1")
	require.True(t, h.Completed("2025-04-01"))

	require.Error(t, (&HabitToggleCmd{Ref: "stretch", Day: "April 1"}).Run(ctx))
}

func TestHabitDeleteConfirms(t *testing.T) {
	ctx, out := clitest.NewContext(t, "no\n")
	require.NoError(t, (&HabitAddCmd{Name: "Stretch"}).Run(ctx))
	require.NoError(t, (&HabitDeleteCmd{Ref: "stretch"}).Run(ctx))

	require.Len(t, ctx.Controller().Habits(), 1)
	require.Contains(t, out.String(), "Delete cancelled.")
}

func TestHabitListShowsStreak(t *testing.T) {
	ctx, out := clitest.NewContext(t, "")
	require.NoError(t, (&HabitListCmd{}).Run(ctx))
	require.Contains(t, out.String(), "No habits yet")

	require.NoError(t, (&HabitAddCmd{Name: "Walk"}).Run(ctx))
	for _, day := range []string{"2025-03-30", "2025-03-31", "2025-04-01"} {
		require.NoError(t, (&HabitToggleCmd{Ref: "walk", Day: day}).Run(ctx))
	}
	out.Reset()

	require.NoError(t, (&HabitListCmd{}).Run(ctx))
	require.Contains(t, out.String(), "Walk")
	require.Contains(t, out.String(), "3")
}

func TestHabitLogMonth(t *testing.T) {
	ctx, out := clitest.NewContext(t, "")
	require.NoError(t, (&HabitAddCmd{Name: "Walk"}).Run(ctx))
	out.Reset()

	require.NoError(t, (&HabitLogCmd{Month: "2025-02"}).Run(ctx))
	require.Contains(t, out.String(), "February 2025")
	require.Contains(t, out.String(), "28")
	require.NotContains(t, out.String(), "29")

	require.Error(t, (&HabitLogCmd{Month: "2025-13"}).Run(ctx))
}

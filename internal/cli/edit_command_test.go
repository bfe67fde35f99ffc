package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEditCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("changes description and times", func(t *testing.T) {
		env := setupTestApp(t, "")
		env.start(t, "Spec")

		edit := NewEditCommand(env.app)
		edit.Description = strPtr("  Spec v2 ")
		edit.Start = strPtr("2024-01-05 09:00:00")
		edit.End = strPtr("2024-01-05 10:00:00")
		require.NoError(t, edit.Execute(ctx, []string{"1"}))
		assert.Equal(t, "Updated #1: Spec v2 (2024-01-05 09:00:00 - 2024-01-05 10:00:00)\n", env.out.String())

		tracking, err := env.api.GetTracking(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), tracking.StartTime)
		require.NotNil(t, tracking.EndTime)
		assert.Equal(t, time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), *tracking.EndTime)
	})

	t.Run("keeps unspecified fields", func(t *testing.T) {
		env := setupTestApp(t, "")
		env.start(t, "Spec")
		env.clock.Advance(time.Hour)
		env.stop(t)

		edit := NewEditCommand(env.app)
		edit.Description = strPtr("Renamed")
		require.NoError(t, edit.Execute(ctx, []string{"1"}))
		assert.Equal(t, "Updated #1: Renamed (2024-01-05 10:30:00 - 2024-01-05 11:30:00)\n", env.out.String())
	})

	t.Run("ends now", func(t *testing.T) {
		env := setupTestApp(t, "")
		env.start(t, "Spec")
		env.clock.Advance(20 * time.Minute)

		edit := NewEditCommand(env.app)
		edit.Now = true
		require.NoError(t, edit.Execute(ctx, []string{"1"}))
		assert.Equal(t, "Updated #1: Spec (2024-01-05 10:30:00 - 2024-01-05 10:50:00)\n", env.out.String())
	})

	t.Run("empty end reopens", func(t *testing.T) {
		env := setupTestApp(t, "")
		env.start(t, "Spec")
		env.clock.Advance(time.Minute)
		env.stop(t)

		edit := NewEditCommand(env.app)
		edit.End = strPtr("")
		require.NoError(t, edit.Execute(ctx, []string{"1"}))
		assert.Equal(t, "Updated #1: Spec (2024-01-05 10:30:00 - running)\n", env.out.String())

		current, err := env.api.CurrentTracking(ctx)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, int64(1), current.Tracking.ID)
	})
}

func TestEditCommand_EndBeforeStartIsSaved(t *testing.T) {
	env := setupTestApp(t, "")
	env.start(t, "Spec")

	edit := NewEditCommand(env.app)
	edit.End = strPtr("2024-01-05 08:00:00")
	require.NoError(t, edit.Execute(context.Background(), []string{"1"}))
	assert.Equal(t, "Updated #1: Spec (2024-01-05 10:30:00 - 2024-01-05 08:00:00)\n", env.out.String())
}

func TestEditCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		edit     func(*EditCommand)
		expected string
	}{
		{
			name:     "non numeric id",
			args:     []string{"abc"},
			expected: "failed to edit tracking: invalid input for id: must be a number",
		},
		{
			name:     "missing tracking",
			args:     []string{"99"},
			expected: "failed to edit tracking: tracking not found: 99",
		},
		{
			name:     "bad start shape",
			args:     []string{"1"},
			edit:     func(c *EditCommand) { c.Start = strPtr("2024-01-05") },
			expected: "failed to edit tracking: start_time has invalid format, expected: YYYY-MM-DD HH:MM:SS",
		},
		{
			name: "end and now together",
			args: []string{"1"},
			edit: func(c *EditCommand) {
				c.End = strPtr("2024-01-05 12:00:00")
				c.Now = true
			},
			expected: "failed to edit tracking: invalid input for end: --end and --now cannot be combined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestApp(t, "")
			env.start(t, "Spec")

			edit := NewEditCommand(env.app)
			if tt.edit != nil {
				tt.edit(edit)
			}
			err := edit.Execute(context.Background(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
			assert.Empty(t, env.out.String())
		})
	}
}

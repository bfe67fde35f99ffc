package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing running", func(t *testing.T) {
		env := setupTestApp(t, "")

		require.NoError(t, NewStopCommand(env.app).Execute(ctx))
		assert.Equal(t, "No tracking is running\n", env.out.String())
	})

	t.Run("stops the running tracking", func(t *testing.T) {
		env := setupTestApp(t, "")
		env.start(t, "Review")
		env.clock.Advance(time.Hour + 5*time.Second)

		require.NoError(t, NewStopCommand(env.app).Execute(ctx))
		assert.Equal(t, "Stopped: Review (1h 5s)\n", env.out.String())

		current, err := env.api.CurrentTracking(ctx)
		require.NoError(t, err)
		assert.Nil(t, current)
	})
}

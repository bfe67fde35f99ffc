package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vault-tracker/internal/domain"
	"vault-tracker/internal/errors"
)

// StartCommand handles the start command
type StartCommand struct {
	app *App
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{app: app}
}

func (r *RootCommand) newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <description...>",
		Short: "Start a new tracking",
		Long:  "Start tracking time under a description. A running tracking is stopped first.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, app *App) error {
				return NewStartCommand(app).Execute(ctx, args)
			})
		},
	}
}

// Execute runs the start command
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "start", "usage: vt start <description>")
	}
	description := strings.Join(args, " ")

	previous, err := c.app.api.CurrentTracking(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("start tracking", err)
	}

	started, err := c.app.api.StartTracking(ctx, description)
	if err != nil {
		return c.app.errorHandler.Handle("start tracking", err)
	}

	if previous != nil {
		fmt.Fprintf(c.app.out, "Stopped: %s (%s)\n", previous.Tracking.Description, previous.Duration)
	}
	fmt.Fprintf(c.app.out, "Started: %s at %s\n", started.Description, domain.FormatClock(started.StartTime, c.app.api.Location()))
	return nil
}

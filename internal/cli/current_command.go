package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vault-tracker/internal/domain"
)

// CurrentCommand handles the current command
type CurrentCommand struct {
	app *App
}

// NewCurrentCommand creates a new current command handler
func NewCurrentCommand(app *App) *CurrentCommand {
	return &CurrentCommand{app: app}
}

func (r *RootCommand) newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the running tracking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, app *App) error {
				return NewCurrentCommand(app).Execute(ctx)
			})
		},
	}
}

// Execute runs the current command
func (c *CurrentCommand) Execute(ctx context.Context) error {
	session, err := c.app.api.CurrentTracking(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("get current tracking", err)
	}
	if session == nil {
		fmt.Fprintln(c.app.out, "No tracking is running")
		return nil
	}

	tracking := session.Tracking
	fmt.Fprintf(c.app.out, "#%d %s (running for %s, since %s)\n",
		tracking.ID, tracking.Description, session.Duration,
		domain.FormatClock(tracking.StartTime, c.app.api.Location()))
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// StopCommand handles the stop command
type StopCommand struct {
	app *App
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{app: app}
}

func (r *RootCommand) newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running tracking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, app *App) error {
				return NewStopCommand(app).Execute(ctx)
			})
		},
	}
}

// Execute runs the stop command
func (c *StopCommand) Execute(ctx context.Context) error {
	stopped, err := c.app.api.StopTracking(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("stop tracking", err)
	}
	if stopped == nil {
		fmt.Fprintln(c.app.out, "No tracking is running")
		return nil
	}

	fmt.Fprintf(c.app.out, "Stopped: %s (%s)\n", stopped.Description, c.app.api.FormatDuration(*stopped))
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vault-tracker/internal/errors"
)

// EditCommand handles the edit command. Nil fields keep the tracking's
// current value; an empty End reopens the tracking.
type EditCommand struct {
	app         *App
	Description *string
	Start       *string
	End         *string
	Now         bool
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

func (r *RootCommand) newEditCmd() *cobra.Command {
	var description, start, end string
	var now bool
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a tracking's description or times",
		Long: `Change a tracking's description, start or end.

Times are wall-clock text in the configured time zone, exactly
YYYY-MM-DD HH:MM:SS. Pass --end "" to reopen a tracking, or --now to end
it at the current time.

Examples:
  vt edit 4 --description "Code review"
  vt edit 4 --start "2024-01-05 09:00:00" --end "2024-01-05 10:15:00"
  vt edit 4 --now`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, app *App) error {
				edit := NewEditCommand(app)
				if cmd.Flags().Changed("description") {
					edit.Description = &description
				}
				if cmd.Flags().Changed("start") {
					edit.Start = &start
				}
				if cmd.Flags().Changed("end") {
					edit.End = &end
				}
				edit.Now = now
				return edit.Execute(ctx, args)
			})
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&start, "start", "", "New start time (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (YYYY-MM-DD HH:MM:SS, empty to reopen)")
	cmd.Flags().BoolVar(&now, "now", false, "End the tracking at the current time")
	cmd.MarkFlagsMutuallyExclusive("end", "now")
	return cmd
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "edit", "usage: vt edit <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.app.errorHandler.Handle("edit tracking", errors.NewInvalidInputError("id", args[0], "must be a number"))
	}
	if c.Now && c.End != nil {
		return c.app.errorHandler.Handle("edit tracking", errors.NewInvalidInputError("end", *c.End, "--end and --now cannot be combined"))
	}

	api := c.app.api
	current, err := api.GetTracking(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle("edit tracking", err)
	}

	description := current.Description
	if c.Description != nil {
		description = *c.Description
	}
	startText := api.TimeText(current.StartTime)
	if c.Start != nil {
		startText = *c.Start
	}
	endText := ""
	if current.EndTime != nil {
		endText = api.TimeText(*current.EndTime)
	}
	switch {
	case c.Now:
		endText = api.TimeText(api.Now())
	case c.End != nil:
		endText = *c.End
	}

	if err := api.EditTracking(ctx, id, description, startText, endText); err != nil {
		return c.app.errorHandler.Handle("edit tracking", err)
	}

	edited, err := api.GetTracking(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle("edit tracking", err)
	}
	end := "running"
	if edited.EndTime != nil {
		end = api.TimeText(*edited.EndTime)
	}
	fmt.Fprintf(c.app.out, "Updated #%d: %s (%s - %s)\n", id, edited.Description, api.TimeText(edited.StartTime), end)
	return nil
}

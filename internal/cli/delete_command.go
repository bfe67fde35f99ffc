package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vault-tracker/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
	Yes bool
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

func (r *RootCommand) newDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tracking",
		Long: `Delete a tracking by id. This cannot be undone; you are asked to
confirm unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runInteractive(cmd, func(ctx context.Context, app *App) error {
				del := NewDeleteCommand(app)
				del.Yes = yes
				return del.Execute(ctx, args)
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: vt delete <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.app.errorHandler.Handle("delete tracking", errors.NewInvalidInputError("id", args[0], "must be a number"))
	}

	tracking, err := c.app.api.GetTracking(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle("delete tracking", err)
	}

	if !c.Yes {
		answer, err := c.app.prompt(fmt.Sprintf("Delete #%d %q? [y/N]: ", tracking.ID, tracking.Description))
		if err != nil {
			return c.app.errorHandler.Handle("delete tracking", err)
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			fmt.Fprintln(c.app.out, "Delete cancelled.")
			return nil
		}
	}

	if err := c.app.api.DeleteTracking(ctx, id); err != nil {
		return c.app.errorHandler.Handle("delete tracking", err)
	}
	fmt.Fprintf(c.app.out, "Deleted #%d: %s\n", tracking.ID, tracking.Description)
	return nil
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"vault-tracker/internal/tui"
)

func (r *RootCommand) newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive day view",
		Long: `Open a full-screen view of a day's trackings.

Keys: left/right change day, type a description and press enter to start,
ctrl+s stops the running tracking, esc or ctrl+c quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runInteractive(cmd, func(ctx context.Context, app *App) error {
				if err := tui.Run(ctx, app.api, app.in, app.out); err != nil {
					return app.errorHandler.Handle("run day view", err)
				}
				return nil
			})
		},
	}
}

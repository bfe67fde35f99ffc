package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vault-tracker/internal/errors"
)

// OutputCommand handles the output command
type OutputCommand struct {
	app    *App
	From   string
	To     string
	Format string
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app, Format: "csv"}
}

func (r *RootCommand) newOutputCmd() *cobra.Command {
	var from, to, format string
	cmd := &cobra.Command{
		Use:   "output",
		Short: "Export trackings",
		Long: `Export the trackings started between two days, both included.

Supported formats:
  csv - Comma-separated values

Example:
  vt output --from 2024-01-01 --to 2024-01-31 > january.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, app *App) error {
				output := NewOutputCommand(app)
				output.From, output.To, output.Format = from, to, format
				return output.Execute(ctx)
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First day to export (default: today)")
	cmd.Flags().StringVar(&to, "to", "", "Last day to export (default: --from)")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format")
	return cmd
}

// Execute runs the output command
func (c *OutputCommand) Execute(ctx context.Context) error {
	switch c.Format {
	case "", "csv":
		return c.outputCSV(ctx)
	default:
		return c.app.errorHandler.Handle("export trackings", errors.NewInvalidInputError("format", c.Format, "unsupported format"))
	}
}

// outputCSV writes one row per tracking. Times use the configured display
// layout in the configured zone; running trackings have no end and count up to now.
func (c *OutputCommand) outputCSV(ctx context.Context) error {
	api := c.app.api

	from, err := api.ParseDay(c.From)
	if err != nil {
		return c.app.errorHandler.Handle("export trackings", err)
	}
	to := from
	if c.To != "" {
		if to, err = api.ParseDay(c.To); err != nil {
			return c.app.errorHandler.Handle("export trackings", err)
		}
	}

	trackings, err := api.RangeTrackings(ctx, from, to)
	if err != nil {
		return c.app.errorHandler.Handle("export trackings", err)
	}

	layout := c.app.config.Time.DisplayFormat
	loc := api.Location()
	now := api.Now()

	writer := csv.NewWriter(c.app.out)
	header := []string{"ID", "Description", "Start Time", "End Time", "Duration (seconds)"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, tracking := range trackings {
		var endTime string
		if tracking.EndTime != nil {
			endTime = tracking.EndTime.In(loc).Format(layout)
		}
		row := []string{
			strconv.FormatInt(tracking.ID, 10),
			tracking.Description,
			tracking.StartTime.In(loc).Format(layout),
			endTime,
			strconv.FormatInt(int64(tracking.Duration(now).Seconds()), 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

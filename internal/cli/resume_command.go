package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vault-tracker/internal/domain"
	"vault-tracker/internal/errors"
)

// ResumeCommand handles the resume command
type ResumeCommand struct {
	app  *App
	Date string
}

// NewResumeCommand creates a new resume command handler
func NewResumeCommand(app *App) *ResumeCommand {
	return &ResumeCommand{app: app}
}

func (r *RootCommand) newResumeCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Start again on something tracked earlier",
		Long: `Pick one of a day's descriptions, most recent first, and start a new
tracking with it.

Examples:
  vt resume
  vt resume --date yesterday`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runInteractive(cmd, func(ctx context.Context, app *App) error {
				resume := NewResumeCommand(app)
				resume.Date = date
				return resume.Execute(ctx)
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to pick from (default: today)")
	return cmd
}

// Execute runs the resume command
func (c *ResumeCommand) Execute(ctx context.Context) error {
	api := c.app.api

	day, err := api.ParseDay(c.Date)
	if err != nil {
		return c.app.errorHandler.Handle("resume tracking", err)
	}

	candidates := latestPerDescription(api.DayTrackings(ctx, day))
	if len(candidates) == 0 {
		fmt.Fprintln(c.app.out, "No trackings found on the selected day.")
		return nil
	}

	loc := api.Location()
	fmt.Fprintln(c.app.out, "Select a tracking to resume:")
	for i, tracking := range candidates {
		fmt.Fprintf(c.app.out, "%d. %s (last started %s)\n", i+1, tracking.Description, domain.FormatClock(tracking.StartTime, loc))
	}

	input, err := c.app.prompt("Enter number to resume, or 'q' to quit: ")
	if err != nil {
		return c.app.errorHandler.Handle("resume tracking", err)
	}
	if strings.EqualFold(input, "q") {
		fmt.Fprintln(c.app.out, "Resume cancelled.")
		return nil
	}
	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(candidates) {
		return c.app.errorHandler.Handle("resume tracking", errors.NewInvalidInputError("selection", input, "invalid selection"))
	}

	resumed, err := api.ResumeTracking(ctx, candidates[idx-1].ID)
	if err != nil {
		return c.app.errorHandler.Handle("resume tracking", err)
	}
	fmt.Fprintf(c.app.out, "Resumed: %s at %s\n", resumed.Description, domain.FormatClock(resumed.StartTime, loc))
	return nil
}

// latestPerDescription keeps the most recent tracking of each description,
// most recent first. Input is ordered by start ascending.
func latestPerDescription(trackings []domain.Tracking) []domain.Tracking {
	seen := make(map[string]bool)
	var latest []domain.Tracking
	for i := len(trackings) - 1; i >= 0; i-- {
		tracking := trackings[i]
		if seen[tracking.Description] {
			continue
		}
		seen[tracking.Description] = true
		latest = append(latest, tracking)
	}
	return latest
}

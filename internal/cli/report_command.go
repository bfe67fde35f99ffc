package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vault-tracker/internal/domain"
	"vault-tracker/internal/services"
)

// ReportCommand handles the report command
type ReportCommand struct {
	app  *App
	Date string
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{app: app}
}

func (r *RootCommand) newReportCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show time per description for a day",
		Long: `Show how long each description was tracked on a day, in the order
the descriptions were first started. Running trackings count up to now.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, app *App) error {
				report := NewReportCommand(app)
				report.Date = date
				return report.Execute(ctx)
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to report (default: today)")
	return cmd
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	day, err := c.app.api.ParseDay(c.Date)
	if err != nil {
		return c.app.errorHandler.Handle("report", err)
	}

	summary := c.app.api.DaySummary(ctx, day)
	if summary.Sessions == 0 {
		fmt.Fprintf(c.app.out, "No trackings on %s\n", domain.FormatDate(day, time.UTC))
		return nil
	}

	fmt.Fprint(c.app.out, c.render(summary))
	return nil
}

func (c *ReportCommand) render(summary *services.DaySummary) string {
	s := newStyles(c.app.renderer)

	t := &table{headers: []string{"DESCRIPTION", "SESSIONS", "DURATION"}}
	for _, total := range summary.Totals {
		duration := domain.FormatDuration(total.Duration)
		if total.Running {
			duration += " " + s.running.Render("(running)")
		}
		t.addRow(total.Description, strconv.Itoa(total.Sessions), duration)
	}
	t.addRow(s.total.Render("Total"), strconv.Itoa(summary.Sessions), s.total.Render(domain.FormatDuration(summary.Total)))

	var b strings.Builder
	b.WriteString(s.heading.Render("Report for " + domain.FormatDate(summary.Day.Start, time.UTC)))
	b.WriteByte('\n')
	b.WriteString(t.render(s))
	return b.String()
}

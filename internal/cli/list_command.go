package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vault-tracker/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app  *App
	Date string
	To   string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

func (r *RootCommand) newListCmd() *cobra.Command {
	var date, to string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trackings of a day or a range of days",
		Long: `List trackings started on a day, oldest first.

Days accept YYYY-MM-DD, "today" or "yesterday". With --to the listing covers
every day from --date through --to, both included.

Examples:
  vt list
  vt list --date yesterday
  vt list --date 2024-01-01 --to 2024-01-07`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, app *App) error {
				list := NewListCommand(app)
				list.Date, list.To = date, to
				return list.Execute(ctx)
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to list (default: today)")
	cmd.Flags().StringVar(&to, "to", "", "Last day of the range to list")
	return cmd
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) error {
	api := c.app.api

	from, err := api.ParseDay(c.Date)
	if err != nil {
		return c.app.errorHandler.Handle("list trackings", err)
	}
	to := from
	if c.To != "" {
		if to, err = api.ParseDay(c.To); err != nil {
			return c.app.errorHandler.Handle("list trackings", err)
		}
	}

	trackings, err := api.RangeTrackings(ctx, from, to)
	if err != nil {
		return c.app.errorHandler.Handle("list trackings", err)
	}

	if len(trackings) == 0 {
		if from.Equal(to) {
			fmt.Fprintf(c.app.out, "No trackings on %s\n", domain.FormatDate(from, time.UTC))
		} else {
			fmt.Fprintf(c.app.out, "No trackings between %s and %s\n",
				domain.FormatDate(from, time.UTC), domain.FormatDate(to, time.UTC))
		}
		return nil
	}

	fmt.Fprint(c.app.out, c.render(trackings))
	return nil
}

// render groups trackings by UTC day, one table per day, then the overall total.
func (c *ListCommand) render(trackings []domain.Tracking) string {
	s := newStyles(c.app.renderer)
	now := c.app.api.Now()

	var b strings.Builder
	var total time.Duration
	for i, group := range groupByDay(trackings) {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.heading.Render(domain.FormatDate(group[0].StartTime, time.UTC)))
		b.WriteByte('\n')
		b.WriteString(c.trackingTable(group, s).render(s))
		for _, tracking := range group {
			total += tracking.Duration(now)
		}
	}
	b.WriteString(s.total.Render("Total: " + domain.FormatDuration(total)))
	b.WriteByte('\n')
	return b.String()
}

func (c *ListCommand) trackingTable(trackings []domain.Tracking, s styles) *table {
	loc := c.app.api.Location()
	t := &table{headers: []string{"ID", "START", "END", "DURATION", "DESCRIPTION"}}
	for _, tracking := range trackings {
		end := s.running.Render("running")
		if tracking.EndTime != nil {
			end = domain.FormatClock(*tracking.EndTime, loc)
		}
		t.addRow(
			strconv.FormatInt(tracking.ID, 10),
			domain.FormatClock(tracking.StartTime, loc),
			end,
			c.app.api.FormatDuration(tracking),
			tracking.Description,
		)
	}
	return t
}

// groupByDay splits trackings ordered by start into runs sharing a UTC day.
func groupByDay(trackings []domain.Tracking) [][]domain.Tracking {
	var groups [][]domain.Tracking
	lastKey := ""
	for _, tracking := range trackings {
		key := tracking.StartTime.UTC().Format(time.DateOnly)
		if key != lastKey || len(groups) == 0 {
			groups = append(groups, nil)
			lastKey = key
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], tracking)
	}
	return groups
}

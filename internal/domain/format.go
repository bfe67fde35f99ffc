package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeTextLayout is the wall-clock text users type and see when editing.
const TimeTextLayout = "2006-01-02 15:04:05"

// FormatDuration renders d as "1h 2m 3s". Zero hours and minutes are left
// out; seconds are always shown.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total / 60) % 60
	seconds := total % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))
	return strings.Join(parts, " ")
}

// FormatDate renders the calendar day of t in loc as dd/mm/yyyy.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006")
}

// FormatClock renders t in loc as HH:MM.
func FormatClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// FormatTimeText renders t in loc as editable wall-clock text.
func FormatTimeText(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(TimeTextLayout)
}

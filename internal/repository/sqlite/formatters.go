package sqlite

import (
	"time"

	"vault-tracker/internal/errors"
)

// TimeLayout is the text form of every timestamp stored in the tracking table.
const TimeLayout = "2006-01-02 15:04:05"

// FormatTimeSQL renders t as UTC storage text.
func FormatTimeSQL(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// DayStart truncates t to midnight of its UTC day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LocalToUTC reads text as wall-clock time in loc and returns the matching
// UTC storage text.
func LocalToUTC(text string, loc *time.Location) (string, error) {
	local, err := time.ParseInLocation(TimeLayout, text, loc)
	if err != nil {
		return "", errors.NewInvalidInputError("time", text, "expected YYYY-MM-DD HH:MM:SS")
	}
	return FormatTimeSQL(local), nil
}

// TimeValue is a timestamp handed to UpdateTracking. It is either TimeText
// or TimeAt.
type TimeValue interface {
	localText(loc *time.Location) string
}

// TimeText is local wall-clock text in TimeLayout.
type TimeText string

func (t TimeText) localText(*time.Location) string { return string(t) }

// TimeAt is an instant.
type TimeAt time.Time

func (t TimeAt) localText(loc *time.Location) string {
	return time.Time(t).In(loc).Format(TimeLayout)
}

// timeValueToUTC renders v the way the store writes it: as local text in loc
// converted to UTC.
func timeValueToUTC(v TimeValue, loc *time.Location) (string, error) {
	return LocalToUTC(v.localText(loc), loc)
}

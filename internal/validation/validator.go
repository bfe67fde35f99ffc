package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"vault-tracker/internal/config"
)

// timeSQLLayout is the Go layout of the storage timestamp text.
const timeSQLLayout = "2006-01-02 15:04:05"

// timeSQLPattern matches the full storage timestamp shape and nothing else.
var timeSQLPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the rune count of the trimmed string is within range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidDescriptionLength checks a description against the configured limit
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsValidStringLength(description, 1, v.getDescriptionMaxLength())
}

// HasControlCharacters reports line breaks, tabs and other control runes.
func (v *Validator) HasControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// IsValidTimeSQL checks for the exact YYYY-MM-DD HH:MM:SS shape
func (v *Validator) IsValidTimeSQL(s string) bool {
	return timeSQLPattern.MatchString(s)
}

// IsValidTimeRange checks that an end time, if any, is not before the start
func (v *Validator) IsValidTimeRange(startTime time.Time, endTime *time.Time) bool {
	if endTime == nil {
		return true // Open tracking, no end time
	}
	return !endTime.Before(startTime)
}

// IsValidDateRange checks if a date range is logical
func (v *Validator) IsValidDateRange(startTime, endTime *time.Time) bool {
	if startTime == nil || endTime == nil {
		return true
	}
	return !endTime.Before(*startTime)
}

// IsValidTrackingID checks if a tracking ID is valid (positive)
func (v *Validator) IsValidTrackingID(id int64) bool {
	return id > 0
}

// NormalizeString trims whitespace and composes the text to Unicode NFC so
// visually equal descriptions compare equal.
func (v *Validator) NormalizeString(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// getDescriptionMaxLength returns configured maximum description length or default
func (v *Validator) getDescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 255 // Default maximum
}

package validation

import (
	"time"

	"vault-tracker/internal/config"
)

// TrackingValidator provides validation for tracking operations
type TrackingValidator struct {
	validator *Validator
}

// NewTrackingValidator creates a new tracking validator
func NewTrackingValidator() *TrackingValidator {
	return &TrackingValidator{
		validator: NewValidator(),
	}
}

// NewTrackingValidatorWithConfig creates a tracking validator using configured limits
func NewTrackingValidatorWithConfig(cfg *config.Config) *TrackingValidator {
	return &TrackingValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTimeSQL rejects anything that is not exactly YYYY-MM-DD HH:MM:SS.
func ValidateTimeSQL(input string) error {
	return NewTrackingValidator().ValidateTimeSQL("time", input)
}

// ValidateTimeSQL checks field's value against the storage timestamp shape
// and that it names a real calendar time.
func (tv *TrackingValidator) ValidateTimeSQL(field string, input string) error {
	validationError := NewValidationError()

	if input == "" {
		validationError.AddRequiredError(field)
		return validationError
	}
	if !tv.validator.IsValidTimeSQL(input) {
		validationError.AddInvalidFormatError(field, input, "YYYY-MM-DD HH:MM:SS")
		return validationError
	}
	if _, err := time.Parse(timeSQLLayout, input); err != nil {
		validationError.AddInvalidValueError(field, input, "not a valid date and time")
		return validationError
	}

	return nil
}

// ValidateDescription validates a description and returns its normalized form
func (tv *TrackingValidator) ValidateDescription(description string) (string, error) {
	validationError := NewValidationError()

	normalized := tv.validator.NormalizeString(description)
	if !tv.validator.IsNonEmptyString(normalized) {
		validationError.AddRequiredError("description")
		return "", validationError
	}

	if !tv.validator.IsValidDescriptionLength(normalized) {
		validationError.AddInvalidLengthError("description", normalized, 1, tv.validator.getDescriptionMaxLength())
	}
	if tv.validator.HasControlCharacters(normalized) {
		validationError.AddInvalidCharacterError("description", normalized)
	}

	if validationError.HasErrors() {
		return "", validationError
	}
	return normalized, nil
}

// ValidateTrackingID validates a tracking ID
func (tv *TrackingValidator) ValidateTrackingID(id int64) error {
	if !tv.validator.IsValidTrackingID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("tracking_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateForEdit validates every field of an edit at once. An empty end
// text is allowed and reopens the tracking. An end before the start is
// accepted; see IsOrdered. The normalized description is returned on success.
func (tv *TrackingValidator) ValidateForEdit(id int64, description, startText, endText string) (string, error) {
	validationError := NewValidationError()

	if err := tv.ValidateTrackingID(id); err != nil {
		validationError.merge(err)
	}

	normalized, err := tv.ValidateDescription(description)
	if err != nil {
		validationError.merge(err)
	}

	startErr := tv.ValidateTimeSQL("start_time", startText)
	if startErr != nil {
		validationError.merge(startErr)
	}

	if endText != "" {
		if err := tv.ValidateTimeSQL("end_time", endText); err != nil {
			validationError.merge(err)
		}
	}

	if validationError.HasErrors() {
		return "", validationError
	}
	return normalized, nil
}

// IsOrdered reports whether the edit's end, if any, is not before its start.
// Texts that do not parse count as ordered.
func (tv *TrackingValidator) IsOrdered(startText, endText string) bool {
	if endText == "" {
		return true
	}
	start, err := time.Parse(timeSQLLayout, startText)
	if err != nil {
		return true
	}
	end, err := time.Parse(timeSQLLayout, endText)
	if err != nil {
		return true
	}
	return tv.validator.IsValidTimeRange(start, &end)
}

// ValidateDateRange validates an inclusive day range
func (tv *TrackingValidator) ValidateDateRange(from, to time.Time) error {
	if !tv.validator.IsValidDateRange(&from, &to) {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("date_range", map[string]time.Time{
			"from": from,
			"to":   to,
		}, "end date must not be before start date")
		return validationError
	}
	return nil
}

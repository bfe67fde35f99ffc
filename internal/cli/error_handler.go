package cli

import (
	"fmt"
	"log/slog"

	"vault-tracker/internal/errors"
	"vault-tracker/internal/logging"
	"vault-tracker/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler that logs nothing
func NewErrorHandler() *ErrorHandler {
	return NewErrorHandlerWithLogger(nil)
}

// NewErrorHandlerWithLogger creates an error handler that logs system failures
func NewErrorHandlerWithLogger(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ErrorHandler{logger: logger}
}

// Handle provides user-friendly error messages for validation and other errors.
// Failures that are not the user's fault are logged with their cause.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.ShouldLogError(err) && !validation.IsValidationError(err) {
		eh.log(operation, err)
	}
	return fmt.Errorf("failed to %s: %w", operation, eh.HandleSimple(err))
}

func (eh *ErrorHandler) log(operation string, err error) {
	attrs := []any{"operation", operation, "code", errors.GetErrorCode(err), "error", err}
	if appErr, ok := errors.AsAppError(err); ok {
		if path, ok := appErr.GetContext("path"); ok {
			attrs = append(attrs, "path", path)
		}
	}
	eh.logger.Error("command failed", attrs...)
}

// HandleSimple provides user-friendly error messages without operation context.
// Field-level validation details win over the wrapping AppError message.
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	if validationErr, ok := validation.AsValidationError(err); ok {
		return &userError{message: validationErr.GetUserFriendlyMessage(), cause: err}
	}
	if _, ok := errors.AsAppError(err); ok {
		return &userError{message: errors.GetUserMessage(err), cause: err}
	}
	return err
}

// userError shows a friendly message while keeping the original error
// reachable for errors.Is and errors.As.
type userError struct {
	message string
	cause   error
}

func (e *userError) Error() string { return e.message }

func (e *userError) Unwrap() error { return e.cause }

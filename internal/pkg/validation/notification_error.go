package validation

import (
	"strings"

	"frosty/internal/pkg/errs"
)

// NotificationError is the ValidationFailed outcome: an ordered, non-empty list of
// messages gathered by one validation pass.
type NotificationError struct {
	message string
	errors  []Error
}

// NewNotificationError snapshots the errors currently held by h.
func NewNotificationError(message string, h Handler) *NotificationError {
	return &NotificationError{
		message: message,
		errors:  h.Errors(),
	}
}

// Message returns the summary given when the error was raised.
func (e *NotificationError) Message() string {
	return e.message
}

// Errors returns a copy of the recorded errors in order.
func (e *NotificationError) Errors() []Error {
	out := make([]Error, len(e.errors))
	copy(out, e.errors)
	return out
}

// Messages returns the recorded messages in order.
func (e *NotificationError) Messages() []string {
	out := make([]string, 0, len(e.errors))
	for _, err := range e.errors {
		out = append(out, err.Message)
	}
	return out
}

func (e *NotificationError) Error() string {
	return e.message + ": " + strings.Join(e.Messages(), "; ")
}

func (e *NotificationError) Unwrap() error {
	return errs.ErrValidationFailed
}

package validation

import "fmt"

// Error is a single validation failure. Positional context such as the field path or
// an item index is part of the message.
type Error struct {
	Message string
}

// NewError builds an Error from a format string.
func NewError(format string, args ...any) Error {
	return Error{Message: fmt.Sprintf(format, args...)}
}

func (e Error) String() string {
	return e.Message
}

// Handler collects the errors of one validation pass.
type Handler interface {
	// Append records one error, preserving insertion order.
	Append(err Error) Handler
	// Merge records all errors of other after the ones already present.
	Merge(other Handler) Handler
	// Errors returns the recorded errors in insertion order.
	Errors() []Error
	// HasError reports whether at least one error was recorded.
	HasError() bool
	// FirstError returns the earliest recorded error.
	FirstError() (Error, bool)
}

// Validator is implemented by every aggregate: it writes its violated invariants into h.
type Validator interface {
	Validate(h Handler)
}

// Notification is an in-memory Handler that accumulates every error it is given.
type Notification struct {
	errors []Error
}

// NewNotification returns an empty Notification.
func NewNotification() *Notification {
	return &Notification{}
}

func (n *Notification) Append(err Error) Handler {
	n.errors = append(n.errors, err)
	return n
}

func (n *Notification) Merge(other Handler) Handler {
	if other == nil {
		return n
	}
	n.errors = append(n.errors, other.Errors()...)
	return n
}

func (n *Notification) Errors() []Error {
	out := make([]Error, len(n.errors))
	copy(out, n.errors)
	return out
}

func (n *Notification) HasError() bool {
	return len(n.errors) > 0
}

func (n *Notification) FirstError() (Error, bool) {
	if len(n.errors) == 0 {
		return Error{}, false
	}
	return n.errors[0], true
}

// Check runs v against a fresh Notification and returns a *NotificationError with the
// given message when anything was recorded.
func Check(v Validator, message string) error {
	n := NewNotification()
	v.Validate(n)
	if n.HasError() {
		return NewNotificationError(message, n)
	}
	return nil
}

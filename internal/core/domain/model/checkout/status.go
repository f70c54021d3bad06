package checkout

import (
	"fmt"
	"strings"

	"frosty/internal/pkg/errs"
)

// Status is the settlement state of a checkout order.
//
// An open order is always Pending. Closing it records how it ended:
//
//	Pending ──┬──> Completed
//	          └──> Error
type Status int

const (
	// Unknown is the zero value. It stands for an absent status and never passes validation.
	Unknown Status = iota

	// Pending is the status of every open order.
	Pending

	// Completed marks an order closed after a successful checkout.
	Completed

	// Error marks an order closed after a failed checkout.
	Error
)

var statusNames = map[Status]string{
	Pending:   "PENDING",
	Completed: "COMPLETED",
	Error:     "ERROR",
}

// ParseStatus converts the persisted or transmitted name of a status, case-insensitively.
//
// Example:
//
//	s, err := checkout.ParseStatus("completed")
//	fmt.Println(s, err) // COMPLETED <nil>
func ParseStatus(value string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(value))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of PENDING, COMPLETED, ERROR", value),
	)
}

// IsValid reports whether s is one of Pending, Completed or Error.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// IsFinal reports whether s may be held by a closed order.
func (s Status) IsFinal() bool {
	return s == Completed || s == Error
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

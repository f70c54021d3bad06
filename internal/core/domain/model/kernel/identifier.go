package kernel

import (
	"strings"

	"frosty/internal/pkg/errs"
)

// ErrIdentifierIsNotConstructed indicates a zero-value Identifier.
var ErrIdentifierIsNotConstructed = errs.NewValueIsRequiredError(
	"identifier must be created via NewIdentifier or IdentifierFrom",
)

// Identifier is an opaque identifier compared by value. The type parameter K is a
// marker for the aggregate kind: Identifier[checkinKind] and Identifier[productKind]
// are distinct types and cannot be mixed up.
//
// Example:
//
//	type orderKind struct{}
//	type OrderID = kernel.Identifier[orderKind]
//
//	id := kernel.NewIdentifier[orderKind](supplier)
//	same, _ := kernel.IdentifierFrom[orderKind](id.String())
//	fmt.Println(id.IsEqual(same)) // true
type Identifier[K any] struct {
	value string
}

// NewIdentifier generates a fresh identifier using ids.
func NewIdentifier[K any](ids IDGenerator) Identifier[K] {
	return Identifier[K]{value: ids.NewID()}
}

// IdentifierFrom wraps an externally supplied value. Blank values are rejected.
func IdentifierFrom[K any](value string) (Identifier[K], error) {
	if strings.TrimSpace(value) == "" {
		return Identifier[K]{}, errs.NewValueIsRequiredError("id")
	}
	return Identifier[K]{value: value}, nil
}

// MustIdentifierFrom is IdentifierFrom for values known to be valid. It panics otherwise.
func MustIdentifierFrom[K any](value string) Identifier[K] {
	id, err := IdentifierFrom[K](value)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the underlying value.
func (id Identifier[K]) String() string {
	return id.value
}

// IsEqual compares two identifiers of the same kind by value.
func (id Identifier[K]) IsEqual(other Identifier[K]) bool {
	return id.value == other.value
}

// IsZero reports whether the identifier was never assigned.
func (id Identifier[K]) IsZero() bool {
	return id.value == ""
}

// Validate returns ErrIdentifierIsNotConstructed for the zero value.
func (id Identifier[K]) Validate() error {
	if id.IsZero() {
		return ErrIdentifierIsNotConstructed
	}
	return nil
}

// IdentifiersFrom converts raw values, failing on the first blank one.
func IdentifiersFrom[K any](values []string) ([]Identifier[K], error) {
	ids := make([]Identifier[K], 0, len(values))
	for _, v := range values {
		id, err := IdentifierFrom[K](v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Strings returns the raw values of ids.
func Strings[K any](ids []Identifier[K]) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.value)
	}
	return out
}

// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries to tell instances built by their constructor apart from
// zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct was built by its constructor.
//
// The zero value reports "not constructed", so a struct literal or a zero value
// of the enclosing type fails validation:
//
//	type OrderItem struct {
//	    id    string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrderItem(id string) (OrderItem, error) {
//	    return OrderItem{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (i OrderItem) Validate() error {
//	    return i.guard.Validate(ErrOrderItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// IsConstructed reports whether the guard was created by NewConstructorGuard.
func (g ConstructorGuard) IsConstructed() bool {
	return g.isConstructed
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not built by its constructor, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

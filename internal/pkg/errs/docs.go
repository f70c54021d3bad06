// Package errs provides standardized error types for the order lifecycle service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the use cases and the adapters.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required parameter is missing
//   - ValueIsInvalidError: a parameter has an unacceptable value
//   - ValueIsOutOfRangeError: a numeric parameter is outside its bounds
//   - ObjectNotFoundError: an aggregate could not be found by its identifier
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// ErrValidationFailed is the sentinel for aggregate self-validation failures; the error
// carrying the accumulated messages lives in the validation package.
package errs

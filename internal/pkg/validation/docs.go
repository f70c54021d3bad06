// Package validation implements the notification pattern used by the aggregates to
// report every violated constraint of a validation pass at once.
//
// A Validator writes Error values into a Handler. Notification is the accumulating
// Handler: it never stops early, so callers receive the complete list of problems in
// a single round trip. Check wraps one pass in the self-validation guard used by the
// aggregates: it returns a *NotificationError carrying every recorded error, or nil.
package validation

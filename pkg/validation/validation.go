// Package validation provides input validation utilities shared by the
// calculator packages.
package validation

import (
	"errors"
	"fmt"
)

// Error describes an input value outside its declared domain. The Field
// identifies which input failed so callers can surface a field-specific
// message.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewError constructs a field-level validation error.
func NewError(field, format string, args ...interface{}) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a validation Error.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// RequirePositive returns an error unless value > 0.
func RequirePositive(field string, value float64) error {
	if value <= 0 {
		return NewError(field, "must be positive, got %v", value)
	}
	return nil
}

// RequireNonNegative returns an error unless value >= 0.
func RequireNonNegative(field string, value float64) error {
	if value < 0 {
		return NewError(field, "must not be negative, got %v", value)
	}
	return nil
}

// RequireRange returns an error unless min <= value <= max.
func RequireRange(field string, value, min, max float64) error {
	if value < min || value > max {
		return NewError(field, "must be between %v and %v, got %v", min, max, value)
	}
	return nil
}

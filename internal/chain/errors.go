package chain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel wrapped by every InputError.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports an argument that violates Verify's preconditions.
type InputError struct {
	// Field names the offending argument ("n0" or "length").
	Field string

	// Value is the rejected value in decimal, or "<nil>".
	Value string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s must be a positive integer (got %s)", ErrInvalidInput, e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// IsInvalidInput returns true if err is, or wraps, an InputError.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

package assessment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every rejected SubmitAnswer or Navigate call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionClosed is returned by a Session after Dispose.
	ErrSessionClosed = errors.New("session closed")
)

// InputError describes which argument was outside its domain.
type InputError struct {
	Field string
	Value any
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s %v out of range", e.Field, e.Value)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

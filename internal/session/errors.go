package session

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionComplete = errors.New("session complete")
	ErrSidePending     = errors.New("left side pending")
	ErrUnknownSet      = errors.New("unknown set")
	ErrSetLogged       = errors.New("set already logged")
)

// InvalidInputError is a recoverable commit rejection. The session state is
// left untouched and the host re-prompts for Field.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, value, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

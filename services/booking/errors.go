package booking

import (
	"errors"
	"fmt"
)

// ErrDraftNotFound is returned when the draft store holds no draft for the
// client. Views render this as a "booking not found" state, not a crash.
var ErrDraftNotFound = errors.New("booking draft not found")

// ValidationError signals an invalid booking form field. It never mutates the
// draft store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// DraftMismatchError signals that the stored draft's id does not match the one
// being operated on.
type DraftMismatchError struct {
	Requested string
	Stored    string
}

func (e *DraftMismatchError) Error() string {
	return fmt.Sprintf("draft mismatch: requested %s, stored %s", e.Requested, e.Stored)
}

// StateError signals an operation applied to a draft in the wrong lifecycle
// status, e.g. paying a draft that is already paid.
type StateError struct {
	Status  string
	Message string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s (status %q)", e.Message, e.Status)
}

// TransientError wraps a store or gateway failure that the user may retry.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

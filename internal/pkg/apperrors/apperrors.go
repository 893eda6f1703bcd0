package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError rejects malformed or out-of-range input before any
// mutation happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation creates a ValidationError for the given field.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StateTransitionError is returned when a lifecycle action is attempted from
// a status it is not allowed from. The aggregate is left untouched.
type StateTransitionError struct {
	Action  string
	Current string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a trip in status %q", e.Action, e.Current)
}

// NewStateTransition creates a StateTransitionError.
func NewStateTransition(action, current string) error {
	return &StateTransitionError{Action: action, Current: current}
}

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NewNotFound creates a NotFoundError.
func NewNotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError indicates the operation would break a dependency that
// downstream data still relies on.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict creates a ConflictError.
func NewConflict(message string) error {
	return &ConflictError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStateTransition reports whether err is a StateTransitionError.
func IsStateTransition(err error) bool {
	var se *StateTransitionError
	return errors.As(err, &se)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

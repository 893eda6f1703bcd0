package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidation("odometer_end", "must not be negative")

	assert.Equal(t, "odometer_end: must not be negative", err.Error())
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}

func TestValidationError_NoField(t *testing.T) {
	err := NewValidation("", "bad request")

	assert.Equal(t, "bad request", err.Error())
}

func TestStateTransitionError(t *testing.T) {
	err := NewStateTransition("complete", "pending")

	assert.Equal(t, `cannot complete a trip in status "pending"`, err.Error())
	assert.True(t, IsStateTransition(err))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("trip", "abc-123")

	assert.Equal(t, "trip abc-123 not found", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestConflictError(t *testing.T) {
	err := NewConflict("route is referenced by existing trips")

	assert.True(t, IsConflict(err))
}

func TestPredicates_UnwrapWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("saving trip: %w", NewNotFound("trip", "abc"))

	assert.True(t, IsNotFound(wrapped))
}

func TestPredicates_PlainError(t *testing.T) {
	err := errors.New("boom")

	assert.False(t, IsValidation(err))
	assert.False(t, IsStateTransition(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}

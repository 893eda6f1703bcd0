package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityarama/fleetops/internal/pkg/apperrors"
	"github.com/adityarama/fleetops/internal/pkg/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		from    models.TripStatus
		allowed bool
	}{
		{"approve pending", ActionApprove, models.TripStatusPending, true},
		{"approve approved", ActionApprove, models.TripStatusApproved, false},
		{"approve completed", ActionApprove, models.TripStatusCompleted, false},
		{"reject pending", ActionReject, models.TripStatusPending, true},
		{"reject approved", ActionReject, models.TripStatusApproved, true},
		{"reject in_progress", ActionReject, models.TripStatusInProgress, false},
		{"start approved", ActionStart, models.TripStatusApproved, true},
		{"start assigned", ActionStart, models.TripStatusAssigned, true},
		{"start pending", ActionStart, models.TripStatusPending, false},
		{"start in_progress", ActionStart, models.TripStatusInProgress, false},
		{"complete in_progress", ActionComplete, models.TripStatusInProgress, true},
		{"complete approved", ActionComplete, models.TripStatusApproved, false},
		{"complete completed", ActionComplete, models.TripStatusCompleted, false},
		{"cancel pending", ActionCancel, models.TripStatusPending, true},
		{"cancel assigned", ActionCancel, models.TripStatusAssigned, true},
		{"cancel in_progress", ActionCancel, models.TripStatusInProgress, false},
		{"cancel completed", ActionCancel, models.TripStatusCompleted, false},
		{"reassign in_progress", ActionReassignVehicle, models.TripStatusInProgress, true},
		{"reassign completed", ActionReassignVehicle, models.TripStatusCompleted, false},
		{"update pending", ActionUpdate, models.TripStatusPending, true},
		{"update approved", ActionUpdate, models.TripStatusApproved, true},
		{"update in_progress", ActionUpdate, models.TripStatusInProgress, false},
		{"delete pending", ActionDelete, models.TripStatusPending, true},
		{"delete approved", ActionDelete, models.TripStatusApproved, false},
		{"delete rejected", ActionDelete, models.TripStatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.action, tt.from))
		})
	}
}

func TestEnsureTransition_Allowed(t *testing.T) {
	err := EnsureTransition(ActionApprove, models.TripStatusPending)
	assert.NoError(t, err)
}

func TestEnsureTransition_Blocked(t *testing.T) {
	err := EnsureTransition(ActionComplete, models.TripStatusCompleted)

	assert.Error(t, err)
	assert.True(t, apperrors.IsStateTransition(err))
	assert.Contains(t, err.Error(), "complete")
	assert.Contains(t, err.Error(), "completed")
}

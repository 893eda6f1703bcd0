package usecase

import (
	"github.com/adityarama/fleetops/internal/pkg/apperrors"
	"github.com/adityarama/fleetops/internal/pkg/models"
)

// Action is a named trip lifecycle operation
type Action string

const (
	ActionApprove         Action = "approve"
	ActionReject          Action = "reject"
	ActionStart           Action = "start"
	ActionComplete        Action = "complete"
	ActionCancel          Action = "cancel"
	ActionReassignVehicle Action = "reassign vehicle"
	ActionUpdate          Action = "update"
	ActionDelete          Action = "delete"
)

// allowedTransitions is the single authoritative guard table: which statuses
// each action may be invoked from. The "assigned" status has no producer
// here; it is set by the external vehicle-assignment flow and accepted as a
// valid intermediate state.
var allowedTransitions = map[Action][]models.TripStatus{
	ActionApprove:         {models.TripStatusPending},
	ActionReject:          {models.TripStatusPending, models.TripStatusApproved},
	ActionStart:           {models.TripStatusApproved, models.TripStatusAssigned},
	ActionComplete:        {models.TripStatusInProgress},
	ActionCancel:          {models.TripStatusPending, models.TripStatusApproved, models.TripStatusAssigned},
	ActionReassignVehicle: {models.TripStatusPending, models.TripStatusApproved, models.TripStatusAssigned, models.TripStatusInProgress},
	ActionUpdate:          {models.TripStatusPending, models.TripStatusApproved},
	ActionDelete:          {models.TripStatusPending},
}

// CanTransition reports whether the action is allowed from the given status.
func CanTransition(action Action, from models.TripStatus) bool {
	for _, s := range allowedTransitions[action] {
		if s == from {
			return true
		}
	}
	return false
}

// EnsureTransition returns a StateTransitionError when the action is not
// allowed from the given status, leaving the caller's aggregate untouched.
func EnsureTransition(action Action, from models.TripStatus) error {
	if !CanTransition(action, from) {
		return apperrors.NewStateTransition(string(action), string(from))
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle represents a fleet vehicle. DriverID is the currently assigned
// driver, if any; assignment itself happens in an external workflow.
type Vehicle struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	RegistrationNo string     `json:"registration_no" db:"registration_no"`
	Model          string     `json:"model,omitempty" db:"model"`
	DriverID       *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// VehicleAssignmentUpdate records why a trip's vehicle was swapped
type VehicleAssignmentUpdate struct {
	TripID       uuid.UUID `json:"trip_id"`
	OldVehicleID uuid.UUID `json:"old_vehicle_id"`
	NewVehicleID uuid.UUID `json:"new_vehicle_id"`
	Reason       string    `json:"reason"`
	Notes        string    `json:"notes"`
}

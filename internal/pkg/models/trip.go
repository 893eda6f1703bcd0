package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusPending    TripStatus = "pending"
	TripStatusApproved   TripStatus = "approved"
	TripStatusAssigned   TripStatus = "assigned" // set by the external vehicle-assignment flow
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusRejected   TripStatus = "rejected"
	TripStatusCancelled  TripStatus = "cancelled"
)

// ScheduleType classifies the purpose of a scheduled trip
type ScheduleType string

const (
	SchedulePickAndDrop ScheduleType = "pick-and-drop"
	ScheduleEngineer    ScheduleType = "engineer"
	ScheduleTraining    ScheduleType = "training"
	ScheduleAdhoc       ScheduleType = "adhoc"
	ScheduleReposition  ScheduleType = "reposition"
)

// Valid reports whether the schedule type is one of the known values.
func (s ScheduleType) Valid() bool {
	switch s {
	case SchedulePickAndDrop, ScheduleEngineer, ScheduleTraining, ScheduleAdhoc, ScheduleReposition:
		return true
	}
	return false
}

// TripPriority represents the urgency of a trip request
type TripPriority string

const (
	PriorityLow    TripPriority = "low"
	PriorityMedium TripPriority = "medium"
	PriorityHigh   TripPriority = "high"
	PriorityUrgent TripPriority = "urgent"
)

// Valid reports whether the priority is one of the known values.
func (p TripPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Trip represents a scheduled vehicle movement
type Trip struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	TripNumber       string          `json:"trip_number" db:"trip_number"`
	VehicleID        uuid.UUID       `json:"vehicle_id" db:"vehicle_id"`
	VehicleRouteID   *uuid.UUID      `json:"vehicle_route_id,omitempty" db:"vehicle_route_id"`
	DepartmentID     *uuid.UUID      `json:"department_id,omitempty" db:"department_id"`
	Purpose          string          `json:"purpose" db:"purpose"`
	Description      string          `json:"description,omitempty" db:"description"`
	ScheduleType     ScheduleType    `json:"schedule_type" db:"schedule_type"`
	Priority         TripPriority    `json:"priority" db:"priority"`
	ScheduledDate    time.Time       `json:"scheduled_date" db:"scheduled_date"`
	StartTime        string          `json:"start_time" db:"start_time"` // HH:MM
	EndTime          string          `json:"end_time" db:"end_time"`     // HH:MM
	RequestedBy      uuid.UUID       `json:"requested_by" db:"requested_by"`
	ApprovedBy       *uuid.UUID      `json:"approved_by,omitempty" db:"approved_by"`
	Status           TripStatus      `json:"status" db:"status"`
	RejectionReason  string          `json:"rejection_reason,omitempty" db:"rejection_reason"`
	ActualStartTime  *time.Time      `json:"actual_start_time,omitempty" db:"actual_start_time"`
	ActualEndTime    *time.Time      `json:"actual_end_time,omitempty" db:"actual_end_time"`
	OdometerStart    *float64        `json:"odometer_start,omitempty" db:"odometer_start"`
	OdometerEnd      *float64        `json:"odometer_end,omitempty" db:"odometer_end"`
	DistanceTraveled *float64        `json:"distance_traveled,omitempty" db:"distance_traveled"`
	FuelConsumed     float64         `json:"fuel_consumed" db:"fuel_consumed"`
	FuelCost         float64         `json:"fuel_cost" db:"fuel_cost"`
	OtherCosts       float64         `json:"other_costs" db:"other_costs"`
	TotalCost        float64         `json:"total_cost" db:"total_cost"` // derived: fuel_cost + other_costs
	Notes            string          `json:"notes,omitempty" db:"notes"`
	Passengers       []TripPassenger `json:"passengers,omitempty"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// TripPassenger represents a user riding a trip
type TripPassenger struct {
	TripID        uuid.UUID  `json:"trip_id" db:"trip_id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	PickupStopID  *uuid.UUID `json:"pickup_stop_id,omitempty" db:"pickup_stop_id"`
	DropoffStopID *uuid.UUID `json:"dropoff_stop_id,omitempty" db:"dropoff_stop_id"`
	Status        string     `json:"status" db:"status"`
}

// TripPassengerInput is one passenger entry submitted with a trip create or
// update.
type TripPassengerInput struct {
	UserID        uuid.UUID  `json:"user_id"`
	PickupStopID  *uuid.UUID `json:"pickup_stop_id"`
	DropoffStopID *uuid.UUID `json:"dropoff_stop_id"`
}

// CreateTripRequest is the payload for requesting a trip
type CreateTripRequest struct {
	TripNumber     string               `json:"trip_number"`
	VehicleID      uuid.UUID            `json:"vehicle_id"`
	VehicleRouteID *uuid.UUID           `json:"vehicle_route_id"`
	DepartmentID   *uuid.UUID           `json:"department_id"`
	Purpose        string               `json:"purpose"`
	Description    string               `json:"description"`
	ScheduleType   ScheduleType         `json:"schedule_type"`
	Priority       TripPriority         `json:"priority"`
	ScheduledDate  time.Time            `json:"scheduled_date"`
	StartTime      string               `json:"start_time"`
	EndTime        string               `json:"end_time"`
	Notes          string               `json:"notes"`
	Passengers     []TripPassengerInput `json:"passengers"`
}

// UpdateTripRequest is the payload for editing a trip while it is still
// editable. A non-nil Passengers slice replaces the passenger list wholesale.
type UpdateTripRequest struct {
	VehicleRouteID *uuid.UUID            `json:"vehicle_route_id"`
	DepartmentID   *uuid.UUID            `json:"department_id"`
	Purpose        *string               `json:"purpose"`
	Description    *string               `json:"description"`
	ScheduleType   *ScheduleType         `json:"schedule_type"`
	Priority       *TripPriority         `json:"priority"`
	ScheduledDate  *time.Time            `json:"scheduled_date"`
	StartTime      *string               `json:"start_time"`
	EndTime        *string               `json:"end_time"`
	Notes          *string               `json:"notes"`
	Passengers     *[]TripPassengerInput `json:"passengers"`
}

// RejectTripRequest carries the mandatory rejection reason
type RejectTripRequest struct {
	Reason string `json:"reason"`
}

// StartTripRequest carries the odometer reading at departure
type StartTripRequest struct {
	OdometerStart float64 `json:"odometer_start"`
}

// CompleteTripRequest carries the readings and costs recorded at arrival
type CompleteTripRequest struct {
	OdometerEnd  float64 `json:"odometer_end"`
	FuelConsumed float64 `json:"fuel_consumed"`
	FuelCost     float64 `json:"fuel_cost"`
	OtherCosts   float64 `json:"other_costs"`
	Notes        string  `json:"notes"`
}

// ReassignVehicleRequest replaces the vehicle on a trip
type ReassignVehicleRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id"`
	Reason    string    `json:"reason"`
	Notes     string    `json:"notes"`
}

// TripFilter narrows trip listings
type TripFilter struct {
	Status       *TripStatus  `json:"status"`
	VehicleID    *uuid.UUID   `json:"vehicle_id"`
	DepartmentID *uuid.UUID   `json:"department_id"`
	Priority     *TripPriority `json:"priority"`
}

// DriverCounterDelta is the counter-increment instruction produced by trip
// completion and applied by the repository inside the same transaction.
type DriverCounterDelta struct {
	DriverID      uuid.UUID `json:"driver_id"`
	DistanceKm    float64   `json:"distance_km"`
	TripsComplete int       `json:"trips_complete"`
}

// TripEvent is published to the message bus on lifecycle transitions
type TripEvent struct {
	TripID     uuid.UUID  `json:"trip_id"`
	TripNumber string     `json:"trip_number"`
	Status     TripStatus `json:"status"`
	ActorID    uuid.UUID  `json:"actor_id"`
	OccurredAt time.Time  `json:"occurred_at"`
}

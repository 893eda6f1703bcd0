package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleRoute represents a named ordered path through a sequence of stops.
// TotalDistance is derived from the stop sequence and never hand-edited.
type VehicleRoute struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	Name          string      `json:"name" db:"name"`
	Description   string      `json:"description,omitempty" db:"description"`
	Remarks       string      `json:"remarks,omitempty" db:"remarks"`
	TotalDistance float64     `json:"total_distance" db:"total_distance"` // in kilometers
	Stops         []RouteStop `json:"stops,omitempty"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// RouteStop binds a stop to a route at a 1-based order position.
// DistanceFromPrevious is 0 for the first stop; CumulativeDistance is the
// running total from the route origin through this stop.
type RouteStop struct {
	RouteID              uuid.UUID `json:"route_id" db:"route_id"`
	StopID               uuid.UUID `json:"stop_id" db:"stop_id"`
	StopOrder            int       `json:"stop_order" db:"stop_order"`
	ArrivalTime          *string   `json:"arrival_time,omitempty" db:"arrival_time"`     // HH:MM
	DepartureTime        *string   `json:"departure_time,omitempty" db:"departure_time"` // HH:MM
	DistanceFromPrevious float64   `json:"distance_from_previous" db:"distance_from_previous"`
	CumulativeDistance   float64   `json:"cumulative_distance" db:"cumulative_distance"`
}

// RouteStopInput is one ordered stop entry submitted with a route create or
// update. ManualDistance, when present, overrides the geodesic leg distance.
type RouteStopInput struct {
	StopID         uuid.UUID `json:"stop_id"`
	ArrivalTime    *string   `json:"arrival_time"`
	DepartureTime  *string   `json:"departure_time"`
	ManualDistance *float64  `json:"manual_distance"`
}

// CreateRouteRequest is the payload for creating a vehicle route
type CreateRouteRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Remarks     string           `json:"remarks"`
	Stops       []RouteStopInput `json:"stops"`
}

// UpdateRouteRequest is the payload for updating a vehicle route. The stop
// sequence, when provided, replaces the existing one wholesale.
type UpdateRouteRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Remarks     string           `json:"remarks"`
	Stops       []RouteStopInput `json:"stops"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Stop represents a named geographic point used as reference data for routes.
// Latitude and longitude are either both present or both absent.
type Stop struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Latitude    *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64  `json:"longitude,omitempty" db:"longitude"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// HasCoordinates reports whether the stop carries a usable coordinate pair.
func (s *Stop) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// CreateStopRequest is the payload for creating a stop
type CreateStopRequest struct {
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description string   `json:"description"`
}

// UpdateStopRequest is the payload for updating a stop
type UpdateStopRequest struct {
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description string   `json:"description"`
}

// NearbyStop is a stop returned from a radius lookup, with its distance
// from the query point.
type NearbyStop struct {
	Stop
	DistanceKm float64 `json:"distance_km"`
	Geohash    string  `json:"geohash"`
}

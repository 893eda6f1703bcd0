package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/adityarama/fleetops/internal/pkg/models"
)

// TripUC defines the interface for trip lifecycle business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adityarama/fleetops/services/trips TripUC
type TripUC interface {
	CreateTrip(ctx context.Context, actorID uuid.UUID, req models.CreateTripRequest) (*models.Trip, error)
	UpdateTrip(ctx context.Context, id uuid.UUID, req models.UpdateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListTrips(ctx context.Context, filter models.TripFilter) ([]models.Trip, error)
	ApproveTrip(ctx context.Context, id, actorID uuid.UUID) (*models.Trip, error)
	RejectTrip(ctx context.Context, id, actorID uuid.UUID, req models.RejectTripRequest) (*models.Trip, error)
	StartTrip(ctx context.Context, id, actorID uuid.UUID, req models.StartTripRequest) (*models.Trip, error)
	CompleteTrip(ctx context.Context, id, actorID uuid.UUID, req models.CompleteTripRequest) (*models.Trip, error)
	CancelTrip(ctx context.Context, id, actorID uuid.UUID) (*models.Trip, error)
	ReassignVehicle(ctx context.Context, id uuid.UUID, req models.ReassignVehicleRequest) (*models.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}

// TripRepo defines the interface for trip data access. CreateTrip and
// UpdateTrip persist the trip together with its passenger list in one
// transaction; CompleteTrip additionally applies the driver counter delta
// inside the same transaction.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adityarama/fleetops/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip, passengers []models.TripPassenger) error
	UpdateTrip(ctx context.Context, trip *models.Trip, passengers []models.TripPassenger, replacePassengers bool) error
	SaveTransition(ctx context.Context, trip *models.Trip) error
	CompleteTrip(ctx context.Context, trip *models.Trip, delta *models.DriverCounterDelta) error
	ReassignVehicle(ctx context.Context, trip *models.Trip, update models.VehicleAssignmentUpdate) error
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListTrips(ctx context.Context, filter models.TripFilter) ([]models.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
}

// TripGW defines the interface for publishing trip lifecycle events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/adityarama/fleetops/services/trips TripGW
type TripGW interface {
	PublishTripEvent(ctx context.Context, topic string, event *models.TripEvent) error
}

package stops

import (
	"context"

	"github.com/google/uuid"

	"github.com/adityarama/fleetops/internal/pkg/models"
)

// StopUC defines the interface for stop business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adityarama/fleetops/services/stops StopUC
type StopUC interface {
	CreateStop(ctx context.Context, req models.CreateStopRequest) (*models.Stop, error)
	UpdateStop(ctx context.Context, id uuid.UUID, req models.UpdateStopRequest) (*models.Stop, error)
	GetStop(ctx context.Context, id uuid.UUID) (*models.Stop, error)
	ListStops(ctx context.Context) ([]models.Stop, error)
	NearbyStops(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyStop, error)
}

// StopRepo defines the interface for stop data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adityarama/fleetops/services/stops StopRepo
type StopRepo interface {
	CreateStop(ctx context.Context, stop *models.Stop) error
	UpdateStop(ctx context.Context, stop *models.Stop) error
	GetStop(ctx context.Context, id uuid.UUID) (*models.Stop, error)
	GetStopsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Stop, error)
	ListStops(ctx context.Context) ([]models.Stop, error)
}

package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/adityarama/fleetops/internal/pkg/models"
)

// RouteUC defines the interface for vehicle route business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adityarama/fleetops/services/routes RouteUC
type RouteUC interface {
	CreateRoute(ctx context.Context, req models.CreateRouteRequest) (*models.VehicleRoute, error)
	UpdateRoute(ctx context.Context, id uuid.UUID, req models.UpdateRouteRequest) (*models.VehicleRoute, error)
	GetRoute(ctx context.Context, id uuid.UUID) (*models.VehicleRoute, error)
	ListRoutes(ctx context.Context) ([]models.VehicleRoute, error)
	DeleteRoute(ctx context.Context, id uuid.UUID) error
}

// RouteRepo defines the interface for vehicle route data access. SaveRoute
// persists the route row and its full stop sequence in one transaction,
// replacing any prior stop set.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adityarama/fleetops/services/routes RouteRepo
type RouteRepo interface {
	SaveRoute(ctx context.Context, route *models.VehicleRoute, stops []models.RouteStop, isNew bool) error
	GetRoute(ctx context.Context, id uuid.UUID) (*models.VehicleRoute, error)
	ListRoutes(ctx context.Context) ([]models.VehicleRoute, error)
	DeleteRoute(ctx context.Context, id uuid.UUID) error
	CountTripsByRoute(ctx context.Context, id uuid.UUID) (int, error)
}

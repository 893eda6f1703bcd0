package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/adityarama/fleetops/internal/pkg/apperrors"
	"github.com/adityarama/fleetops/internal/pkg/logger"
	"github.com/adityarama/fleetops/internal/pkg/models"
	"github.com/adityarama/fleetops/services/routes"
	"github.com/adityarama/fleetops/services/stops"
)

// RouteUC implements the routes.RouteUC interface
type routeUC struct {
	cfg       *models.Config
	routeRepo routes.RouteRepo
	stopRepo  stops.StopRepo
}

// NewRouteUC creates a new vehicle route use case
func NewRouteUC(cfg *models.Config, routeRepo routes.RouteRepo, stopRepo stops.StopRepo) routes.RouteUC {
	return &routeUC{
		cfg:       cfg,
		routeRepo: routeRepo,
		stopRepo:  stopRepo,
	}
}

// CreateRoute creates a vehicle route with its computed stop sequence.
func (uc *routeUC) CreateRoute(ctx context.Context, req models.CreateRouteRequest) (*models.VehicleRoute, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidation("name", "is required")
	}

	routeStops, total, err := uc.computeStops(ctx, req.Stops)
	if err != nil {
		return nil, err
	}

	route := &models.VehicleRoute{
		ID:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		Remarks:       req.Remarks,
		TotalDistance: total,
		CreatedAt:     models.Now(),
		UpdatedAt:     models.Now(),
	}
	bindStops(route, routeStops)

	if err := uc.routeRepo.SaveRoute(ctx, route, route.Stops, true); err != nil {
		return nil, err
	}

	logger.Info("route created",
		logger.String("route_id", route.ID.String()),
		logger.Int("stops", len(route.Stops)),
		logger.Float64("total_distance_km", route.TotalDistance))

	return route, nil
}

// UpdateRoute updates a vehicle route; the submitted stop sequence replaces
// the stored one wholesale and all distances are recomputed.
func (uc *routeUC) UpdateRoute(ctx context.Context, id uuid.UUID, req models.UpdateRouteRequest) (*models.VehicleRoute, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidation("name", "is required")
	}

	route, err := uc.routeRepo.GetRoute(ctx, id)
	if err != nil {
		return nil, err
	}

	routeStops, total, err := uc.computeStops(ctx, req.Stops)
	if err != nil {
		return nil, err
	}

	route.Name = req.Name
	route.Description = req.Description
	route.Remarks = req.Remarks
	route.TotalDistance = total
	route.UpdatedAt = models.Now()
	bindStops(route, routeStops)

	if err := uc.routeRepo.SaveRoute(ctx, route, route.Stops, false); err != nil {
		return nil, err
	}

	return route, nil
}

// GetRoute retrieves a route with its stop sequence
func (uc *routeUC) GetRoute(ctx context.Context, id uuid.UUID) (*models.VehicleRoute, error) {
	return uc.routeRepo.GetRoute(ctx, id)
}

// ListRoutes retrieves all routes
func (uc *routeUC) ListRoutes(ctx context.Context) ([]models.VehicleRoute, error) {
	return uc.routeRepo.ListRoutes(ctx)
}

// DeleteRoute removes a route unless trips still reference it.
func (uc *routeUC) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	count, err := uc.routeRepo.CountTripsByRoute(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewConflict("route is referenced by existing trips")
	}
	return uc.routeRepo.DeleteRoute(ctx, id)
}

func (uc *routeUC) computeStops(ctx context.Context, inputs []models.RouteStopInput) ([]models.RouteStop, float64, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.StopID)
	}

	stopsByID, err := uc.stopRepo.GetStopsByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	return ComputeRouteDistances(stopsByID, inputs)
}

func bindStops(route *models.VehicleRoute, routeStops []models.RouteStop) {
	for i := range routeStops {
		routeStops[i].RouteID = route.ID
	}
	route.Stops = routeStops
}

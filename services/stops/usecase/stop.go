package usecase

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/adityarama/fleetops/internal/pkg/apperrors"
	"github.com/adityarama/fleetops/internal/pkg/constants"
	"github.com/adityarama/fleetops/internal/pkg/database"
	"github.com/adityarama/fleetops/internal/pkg/logger"
	"github.com/adityarama/fleetops/internal/pkg/models"
	"github.com/adityarama/fleetops/internal/utils"
	"github.com/adityarama/fleetops/services/stops"
)

const geohashPrecision = 9

// StopUC implements the stops.StopUC interface
type stopUC struct {
	cfg         *models.Config
	stopRepo    stops.StopRepo
	redisClient *database.RedisClient
}

// NewStopUC creates a new stop use case
func NewStopUC(cfg *models.Config, stopRepo stops.StopRepo, redisClient *database.RedisClient) stops.StopUC {
	return &stopUC{
		cfg:         cfg,
		stopRepo:    stopRepo,
		redisClient: redisClient,
	}
}

// CreateStop validates and persists a new stop, and indexes it for nearby
// lookups when it carries coordinates.
func (uc *stopUC) CreateStop(ctx context.Context, req models.CreateStopRequest) (*models.Stop, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidation("name", "is required")
	}
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	stop := &models.Stop{
		ID:          uuid.New(),
		Name:        req.Name,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
		CreatedAt:   models.Now(),
		UpdatedAt:   models.Now(),
	}

	if err := uc.stopRepo.CreateStop(ctx, stop); err != nil {
		return nil, err
	}

	uc.indexStop(ctx, stop)
	return stop, nil
}

// UpdateStop validates and persists changes to an existing stop and keeps
// the geo index in sync.
func (uc *stopUC) UpdateStop(ctx context.Context, id uuid.UUID, req models.UpdateStopRequest) (*models.Stop, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidation("name", "is required")
	}
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	stop, err := uc.stopRepo.GetStop(ctx, id)
	if err != nil {
		return nil, err
	}

	stop.Name = req.Name
	stop.Latitude = req.Latitude
	stop.Longitude = req.Longitude
	stop.Description = req.Description
	stop.UpdatedAt = models.Now()

	if err := uc.stopRepo.UpdateStop(ctx, stop); err != nil {
		return nil, err
	}

	if stop.HasCoordinates() {
		uc.indexStop(ctx, stop)
	} else if err := uc.redisClient.GeoRemove(ctx, constants.StopGeoKey, stop.ID.String()); err != nil {
		logger.Warn("failed to remove stop from geo index",
			logger.String("stop_id", stop.ID.String()),
			logger.Err(err))
	}

	return stop, nil
}

// GetStop retrieves a stop by id
func (uc *stopUC) GetStop(ctx context.Context, id uuid.UUID) (*models.Stop, error) {
	return uc.stopRepo.GetStop(ctx, id)
}

// ListStops retrieves all stops
func (uc *stopUC) ListStops(ctx context.Context) ([]models.Stop, error) {
	return uc.stopRepo.ListStops(ctx)
}

// NearbyStops finds stops within radiusKm of the given point, nearest first.
func (uc *stopUC) NearbyStops(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyStop, error) {
	if latitude < -90 || latitude > 90 {
		return nil, apperrors.NewValidation("latitude", "must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return nil, apperrors.NewValidation("longitude", "must be between -180 and 180")
	}
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Stops.DefaultRadiusKm
	}
	if max := uc.cfg.Stops.MaxRadiusKm; max > 0 && radiusKm > max {
		return nil, apperrors.NewValidation("radius_km", "must be at most "+strconv.FormatFloat(max, 'f', -1, 64))
	}

	locations, err := uc.redisClient.GeoRadius(ctx, constants.StopGeoKey, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return []models.NearbyStop{}, nil
	}

	ids := make([]uuid.UUID, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	stopsByID, err := uc.stopRepo.GetStopsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	nearby := make([]models.NearbyStop, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		stop, ok := stopsByID[id]
		if !ok {
			// Index entry outlived the stop row; skip it
			continue
		}
		nearby = append(nearby, models.NearbyStop{
			Stop:       stop,
			DistanceKm: utils.Round2(loc.Dist),
			Geohash:    utils.EncodeGeohash(loc.Latitude, loc.Longitude, geohashPrecision),
		})
	}

	return nearby, nil
}

func (uc *stopUC) indexStop(ctx context.Context, stop *models.Stop) {
	if !stop.HasCoordinates() {
		return
	}
	if err := uc.redisClient.GeoAdd(ctx, constants.StopGeoKey, *stop.Longitude, *stop.Latitude, stop.ID.String()); err != nil {
		// The index is a lookup accelerator; stop data itself is already saved
		logger.Warn("failed to index stop location",
			logger.String("stop_id", stop.ID.String()),
			logger.Err(err))
	}
}

func validateCoordinates(latitude, longitude *float64) error {
	if (latitude == nil) != (longitude == nil) {
		return apperrors.NewValidation("coordinates", "latitude and longitude must be provided together")
	}
	if latitude == nil {
		return nil
	}
	if *latitude < -90 || *latitude > 90 {
		return apperrors.NewValidation("latitude", "must be between -90 and 90")
	}
	if *longitude < -180 || *longitude > 180 {
		return apperrors.NewValidation("longitude", "must be between -180 and 180")
	}
	return nil
}

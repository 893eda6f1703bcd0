package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adityarama/fleetops/internal/pkg/apperrors"
	"github.com/adityarama/fleetops/internal/pkg/models"
)

// RouteRepo implements vehicle route data access on PostgreSQL
type RouteRepo struct {
	db *sqlx.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(db *sqlx.DB) *RouteRepo {
	return &RouteRepo{db: db}
}

// SaveRoute persists the route row and its full stop sequence in one
// transaction. The existing stop set is deleted and the new one inserted;
// a failure anywhere rolls the whole unit back.
func (r *RouteRepo) SaveRoute(ctx context.Context, route *models.VehicleRoute, stops []models.RouteStop, isNew bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if isNew {
		insertRoute := `
			INSERT INTO vehicle_routes (id, name, description, remarks, total_distance, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		if _, err := tx.ExecContext(ctx, insertRoute,
			route.ID, route.Name, route.Description, route.Remarks,
			route.TotalDistance, route.CreatedAt, route.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert route: %w", err)
		}
	} else {
		updateRoute := `
			UPDATE vehicle_routes
			SET name = $1, description = $2, remarks = $3, total_distance = $4, updated_at = $5
			WHERE id = $6
		`
		result, err := tx.ExecContext(ctx, updateRoute,
			route.Name, route.Description, route.Remarks,
			route.TotalDistance, route.UpdatedAt, route.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update route: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.NewNotFound("route", route.ID.String())
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM route_stops WHERE route_id = $1`, route.ID); err != nil {
			return fmt.Errorf("failed to clear route stops: %w", err)
		}
	}

	insertStop := `
		INSERT INTO route_stops (route_id, stop_id, stop_order, arrival_time, departure_time, distance_from_previous, cumulative_distance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, s := range stops {
		if _, err := tx.ExecContext(ctx, insertStop,
			s.RouteID, s.StopID, s.StopOrder, s.ArrivalTime, s.DepartureTime,
			s.DistanceFromPrevious, s.CumulativeDistance,
		); err != nil {
			return fmt.Errorf("failed to insert route stop %d: %w", s.StopOrder, err)
		}
	}

	return tx.Commit()
}

// GetRoute retrieves a route with its ordered stop sequence
func (r *RouteRepo) GetRoute(ctx context.Context, id uuid.UUID) (*models.VehicleRoute, error) {
	routeQuery := `
		SELECT id, name, description, remarks, total_distance, created_at, updated_at
		FROM vehicle_routes
		WHERE id = $1
	`

	route := &models.VehicleRoute{}
	if err := r.db.GetContext(ctx, route, routeQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("route", id.String())
		}
		return nil, err
	}

	stopsQuery := `
		SELECT route_id, stop_id, stop_order, arrival_time, departure_time, distance_from_previous, cumulative_distance
		FROM route_stops
		WHERE route_id = $1
		ORDER BY stop_order ASC
	`

	stops := []models.RouteStop{}
	if err := r.db.SelectContext(ctx, &stops, stopsQuery, id); err != nil {
		return nil, err
	}
	route.Stops = stops

	return route, nil
}

// ListRoutes retrieves all routes without their stop sequences
func (r *RouteRepo) ListRoutes(ctx context.Context) ([]models.VehicleRoute, error) {
	query := `
		SELECT id, name, description, remarks, total_distance, created_at, updated_at
		FROM vehicle_routes
		ORDER BY name ASC
	`

	list := []models.VehicleRoute{}
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteRoute removes a route and its stop sequence in one transaction
func (r *RouteRepo) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM route_stops WHERE route_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete route stops: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM vehicle_routes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NewNotFound("route", id.String())
	}

	return tx.Commit()
}

// CountTripsByRoute counts trips that reference a route
func (r *RouteRepo) CountTripsByRoute(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM trips WHERE vehicle_route_id = $1`, id)
	if err != nil {
		return 0, err
	}
	return count, nil
}

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

// StopRepo implements stop data access on PostgreSQL
type StopRepo struct {
	db *sqlx.DB
}

// NewStopRepository creates a new stop repository
func NewStopRepository(db *sqlx.DB) *StopRepo {
	return &StopRepo{db: db}
}

// CreateStop inserts a new stop
func (r *StopRepo) CreateStop(ctx context.Context, stop *models.Stop) error {
	query := `
		INSERT INTO stops (id, name, latitude, longitude, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		stop.ID,
		stop.Name,
		stop.Latitude,
		stop.Longitude,
		stop.Description,
		stop.CreatedAt,
		stop.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stop: %w", err)
	}
	return nil
}

// UpdateStop updates an existing stop
func (r *StopRepo) UpdateStop(ctx context.Context, stop *models.Stop) error {
	query := `
		UPDATE stops
		SET name = $1, latitude = $2, longitude = $3, description = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		stop.Name,
		stop.Latitude,
		stop.Longitude,
		stop.Description,
		stop.UpdatedAt,
		stop.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update stop: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NewNotFound("stop", stop.ID.String())
	}
	return nil
}

// GetStop retrieves a stop by id
func (r *StopRepo) GetStop(ctx context.Context, id uuid.UUID) (*models.Stop, error) {
	query := `
		SELECT id, name, latitude, longitude, description, created_at, updated_at
		FROM stops
		WHERE id = $1
	`

	stop := &models.Stop{}
	err := r.db.GetContext(ctx, stop, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("stop", id.String())
		}
		return nil, err
	}
	return stop, nil
}

// GetStopsByIDs retrieves stops keyed by id. Callers are responsible for
// deciding whether a missing id is an error.
func (r *StopRepo) GetStopsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Stop, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]models.Stop{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, name, latitude, longitude, description, created_at, updated_at
		FROM stops
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var list []models.Stop
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]models.Stop, len(list))
	for _, s := range list {
		out[s.ID] = s
	}
	return out, nil
}

// ListStops retrieves all stops ordered by name
func (r *StopRepo) ListStops(ctx context.Context) ([]models.Stop, error) {
	query := `
		SELECT id, name, latitude, longitude, description, created_at, updated_at
		FROM stops
		ORDER BY name ASC
	`

	list := []models.Stop{}
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, err
	}
	return list, nil
}

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

// TripRepo implements trip data access on PostgreSQL
type TripRepo struct {
	db *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sqlx.DB) *TripRepo {
	return &TripRepo{db: db}
}

const tripColumns = `
	id, trip_number, vehicle_id, vehicle_route_id, department_id, purpose, description,
	schedule_type, priority, scheduled_date, start_time, end_time,
	requested_by, approved_by, status, rejection_reason,
	actual_start_time, actual_end_time, odometer_start, odometer_end, distance_traveled,
	fuel_consumed, fuel_cost, other_costs, total_cost, notes, created_at, updated_at
`

// CreateTrip inserts the trip and its passenger list in one transaction
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip, passengers []models.TripPassenger) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertTrip := `
		INSERT INTO trips (
			id, trip_number, vehicle_id, vehicle_route_id, department_id, purpose, description,
			schedule_type, priority, scheduled_date, start_time, end_time,
			requested_by, status, fuel_consumed, fuel_cost, other_costs, total_cost, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`
	if _, err := tx.ExecContext(ctx, insertTrip,
		trip.ID, trip.TripNumber, trip.VehicleID, trip.VehicleRouteID, trip.DepartmentID,
		trip.Purpose, trip.Description, trip.ScheduleType, trip.Priority,
		trip.ScheduledDate, trip.StartTime, trip.EndTime,
		trip.RequestedBy, trip.Status,
		trip.FuelConsumed, trip.FuelCost, trip.OtherCosts, trip.TotalCost, trip.Notes,
		trip.CreatedAt, trip.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	if err := insertPassengers(ctx, tx, passengers); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateTrip updates the trip row and, when requested, replaces the
// passenger list wholesale, in one transaction
func (r *TripRepo) UpdateTrip(ctx context.Context, trip *models.Trip, passengers []models.TripPassenger, replacePassengers bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updateTrip := `
		UPDATE trips
		SET vehicle_route_id = $1, department_id = $2, purpose = $3, description = $4,
			schedule_type = $5, priority = $6, scheduled_date = $7, start_time = $8, end_time = $9,
			notes = $10, updated_at = $11
		WHERE id = $12
	`
	result, err := tx.ExecContext(ctx, updateTrip,
		trip.VehicleRouteID, trip.DepartmentID, trip.Purpose, trip.Description,
		trip.ScheduleType, trip.Priority, trip.ScheduledDate, trip.StartTime, trip.EndTime,
		trip.Notes, trip.UpdatedAt, trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if err := ensureRowAffected(result, "trip", trip.ID); err != nil {
		return err
	}

	if replacePassengers {
		if _, err := tx.ExecContext(ctx, `DELETE FROM trip_passengers WHERE trip_id = $1`, trip.ID); err != nil {
			return fmt.Errorf("failed to clear trip passengers: %w", err)
		}
		if err := insertPassengers(ctx, tx, passengers); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveTransition persists the lifecycle fields touched by approve, reject,
// start and cancel
func (r *TripRepo) SaveTransition(ctx context.Context, trip *models.Trip) error {
	query := `
		UPDATE trips
		SET status = $1, approved_by = $2, rejection_reason = $3,
			actual_start_time = $4, odometer_start = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		trip.Status, trip.ApprovedBy, trip.RejectionReason,
		trip.ActualStartTime, trip.OdometerStart, trip.UpdatedAt, trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to save trip transition: %w", err)
	}
	return ensureRowAffected(result, "trip", trip.ID)
}

// CompleteTrip persists the completion fields and applies the driver counter
// delta inside the same transaction, so the counters move exactly when the
// trip reaches completed state
func (r *TripRepo) CompleteTrip(ctx context.Context, trip *models.Trip, delta *models.DriverCounterDelta) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE trips
		SET status = $1, actual_end_time = $2, odometer_end = $3, distance_traveled = $4,
			fuel_consumed = $5, fuel_cost = $6, other_costs = $7, total_cost = $8,
			notes = $9, updated_at = $10
		WHERE id = $11
	`
	result, err := tx.ExecContext(ctx, query,
		trip.Status, trip.ActualEndTime, trip.OdometerEnd, trip.DistanceTraveled,
		trip.FuelConsumed, trip.FuelCost, trip.OtherCosts, trip.TotalCost,
		trip.Notes, trip.UpdatedAt, trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete trip: %w", err)
	}
	if err := ensureRowAffected(result, "trip", trip.ID); err != nil {
		return err
	}

	if delta != nil {
		counterQuery := `
			UPDATE drivers
			SET total_distance_covered = total_distance_covered + $1,
				total_trips_completed = total_trips_completed + $2
			WHERE user_id = $3
		`
		counterResult, err := tx.ExecContext(ctx, counterQuery,
			delta.DistanceKm, delta.TripsComplete, delta.DriverID,
		)
		if err != nil {
			return fmt.Errorf("failed to apply driver counters: %w", err)
		}
		if err := ensureRowAffected(counterResult, "driver", delta.DriverID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ReassignVehicle swaps the trip's vehicle and records the reassignment in
// one transaction
func (r *TripRepo) ReassignVehicle(ctx context.Context, trip *models.Trip, update models.VehicleAssignmentUpdate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE trips SET vehicle_id = $1, updated_at = $2 WHERE id = $3`,
		trip.VehicleID, trip.UpdatedAt, trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to reassign vehicle: %w", err)
	}
	if err := ensureRowAffected(result, "trip", trip.ID); err != nil {
		return err
	}

	assignmentQuery := `
		INSERT INTO trip_vehicle_assignments (trip_id, old_vehicle_id, new_vehicle_id, reason, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.ExecContext(ctx, assignmentQuery,
		update.TripID, update.OldVehicleID, update.NewVehicleID,
		update.Reason, update.Notes, models.Now(),
	); err != nil {
		return fmt.Errorf("failed to record vehicle reassignment: %w", err)
	}

	return tx.Commit()
}

// GetTrip retrieves a trip with its passenger list
func (r *TripRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip := &models.Trip{}
	if err := r.db.GetContext(ctx, trip, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("trip", id.String())
		}
		return nil, err
	}

	passengersQuery := `
		SELECT trip_id, user_id, pickup_stop_id, dropoff_stop_id, status
		FROM trip_passengers
		WHERE trip_id = $1
	`
	passengers := []models.TripPassenger{}
	if err := r.db.SelectContext(ctx, &passengers, passengersQuery, id); err != nil {
		return nil, err
	}
	trip.Passengers = passengers

	return trip, nil
}

// ListTrips retrieves trips matching the filter, newest first
func (r *TripRepo) ListTrips(ctx context.Context, filter models.TripFilter) ([]models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", idx)
		args = append(args, *filter.Status)
		idx++
	}
	if filter.VehicleID != nil {
		query += fmt.Sprintf(" AND vehicle_id = $%d", idx)
		args = append(args, *filter.VehicleID)
		idx++
	}
	if filter.DepartmentID != nil {
		query += fmt.Sprintf(" AND department_id = $%d", idx)
		args = append(args, *filter.DepartmentID)
		idx++
	}
	if filter.Priority != nil {
		query += fmt.Sprintf(" AND priority = $%d", idx)
		args = append(args, *filter.Priority)
		idx++
	}
	query += " ORDER BY scheduled_date DESC, created_at DESC"

	list := []models.Trip{}
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteTrip hard-removes the trip and its passengers in one transaction
func (r *TripRepo) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trip_passengers WHERE trip_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete trip passengers: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if err := ensureRowAffected(result, "trip", id); err != nil {
		return err
	}

	return tx.Commit()
}

// GetVehicle retrieves a vehicle by id
func (r *TripRepo) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT id, registration_no, model, driver_id, is_active, created_at, updated_at
		FROM vehicles
		WHERE id = $1
	`

	vehicle := &models.Vehicle{}
	if err := r.db.GetContext(ctx, vehicle, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("vehicle", id.String())
		}
		return nil, err
	}
	return vehicle, nil
}

func insertPassengers(ctx context.Context, tx *sqlx.Tx, passengers []models.TripPassenger) error {
	query := `
		INSERT INTO trip_passengers (trip_id, user_id, pickup_stop_id, dropoff_stop_id, status)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, p := range passengers {
		if _, err := tx.ExecContext(ctx, query,
			p.TripID, p.UserID, p.PickupStopID, p.DropoffStopID, p.Status,
		); err != nil {
			return fmt.Errorf("failed to insert trip passenger: %w", err)
		}
	}
	return nil
}

func ensureRowAffected(result sql.Result, entity string, id uuid.UUID) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NewNotFound(entity, id.String())
	}
	return nil
}

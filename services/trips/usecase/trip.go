package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/adityarama/fleetops/internal/pkg/apperrors"
	"github.com/adityarama/fleetops/internal/pkg/constants"
	"github.com/adityarama/fleetops/internal/pkg/logger"
	"github.com/adityarama/fleetops/internal/pkg/models"
	"github.com/adityarama/fleetops/services/trips"
)

// TripUC implements the trips.TripUC interface
type tripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
}

// NewTripUC creates a new trip use case
func NewTripUC(cfg *models.Config, tripRepo trips.TripRepo, tripGW trips.TripGW) trips.TripUC {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
	}
}

// CreateTrip validates and persists a new trip request in pending status,
// owned by the requesting actor.
func (uc *tripUC) CreateTrip(ctx context.Context, actorID uuid.UUID, req models.CreateTripRequest) (*models.Trip, error) {
	if req.TripNumber == "" {
		return nil, apperrors.NewValidation("trip_number", "is required")
	}
	if req.Purpose == "" {
		return nil, apperrors.NewValidation("purpose", "is required")
	}
	if !req.ScheduleType.Valid() {
		return nil, apperrors.NewValidation("schedule_type", "unknown value "+string(req.ScheduleType))
	}
	if !req.Priority.Valid() {
		return nil, apperrors.NewValidation("priority", "unknown value "+string(req.Priority))
	}
	if err := models.ValidateClock(req.StartTime); err != nil {
		return nil, apperrors.NewValidation("start_time", err.Error())
	}
	if err := models.ValidateClock(req.EndTime); err != nil {
		return nil, apperrors.NewValidation("end_time", err.Error())
	}

	if _, err := uc.tripRepo.GetVehicle(ctx, req.VehicleID); err != nil {
		return nil, err
	}

	trip := &models.Trip{
		ID:             uuid.New(),
		TripNumber:     req.TripNumber,
		VehicleID:      req.VehicleID,
		VehicleRouteID: req.VehicleRouteID,
		DepartmentID:   req.DepartmentID,
		Purpose:        req.Purpose,
		Description:    req.Description,
		ScheduleType:   req.ScheduleType,
		Priority:       req.Priority,
		ScheduledDate:  req.ScheduledDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		RequestedBy:    actorID,
		Status:         models.TripStatusPending,
		Notes:          req.Notes,
		CreatedAt:      models.Now(),
		UpdatedAt:      models.Now(),
	}
	trip.Passengers = buildPassengers(trip.ID, req.Passengers)

	if err := uc.tripRepo.CreateTrip(ctx, trip, trip.Passengers); err != nil {
		return nil, err
	}

	logger.Info("trip requested",
		logger.String("trip_id", trip.ID.String()),
		logger.String("trip_number", trip.TripNumber),
		logger.String("requested_by", actorID.String()))

	return trip, nil
}

// UpdateTrip edits a trip while it is still editable. A provided passenger
// list replaces the stored one wholesale.
func (uc *tripUC) UpdateTrip(ctx context.Context, id uuid.UUID, req models.UpdateTripRequest) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := EnsureTransition(ActionUpdate, trip.Status); err != nil {
		return nil, err
	}

	if req.ScheduleType != nil {
		if !req.ScheduleType.Valid() {
			return nil, apperrors.NewValidation("schedule_type", "unknown value "+string(*req.ScheduleType))
		}
		trip.ScheduleType = *req.ScheduleType
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, apperrors.NewValidation("priority", "unknown value "+string(*req.Priority))
		}
		trip.Priority = *req.Priority
	}
	if req.StartTime != nil {
		if err := models.ValidateClock(*req.StartTime); err != nil {
			return nil, apperrors.NewValidation("start_time", err.Error())
		}
		trip.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if err := models.ValidateClock(*req.EndTime); err != nil {
			return nil, apperrors.NewValidation("end_time", err.Error())
		}
		trip.EndTime = *req.EndTime
	}
	if req.VehicleRouteID != nil {
		trip.VehicleRouteID = req.VehicleRouteID
	}
	if req.DepartmentID != nil {
		trip.DepartmentID = req.DepartmentID
	}
	if req.Purpose != nil {
		trip.Purpose = *req.Purpose
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.ScheduledDate != nil {
		trip.ScheduledDate = *req.ScheduledDate
	}
	if req.Notes != nil {
		trip.Notes = *req.Notes
	}
	trip.UpdatedAt = models.Now()

	replacePassengers := req.Passengers != nil
	if replacePassengers {
		trip.Passengers = buildPassengers(trip.ID, *req.Passengers)
	}

	if err := uc.tripRepo.UpdateTrip(ctx, trip, trip.Passengers, replacePassengers); err != nil {
		return nil, err
	}
	return trip, nil
}

// GetTrip retrieves a trip with its passenger list
func (uc *tripUC) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	return uc.tripRepo.GetTrip(ctx, id)
}

// ListTrips retrieves trips matching the filter
func (uc *tripUC) ListTrips(ctx context.Context, filter models.TripFilter) ([]models.Trip, error) {
	return uc.tripRepo.ListTrips(ctx, filter)
}

// ApproveTrip moves a pending trip to approved, stamped with the approver.
func (uc *tripUC) ApproveTrip(ctx context.Context, id, actorID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := EnsureTransition(ActionApprove, trip.Status); err != nil {
		return nil, err
	}

	trip.Status = models.TripStatusApproved
	trip.ApprovedBy = &actorID
	trip.UpdatedAt = models.Now()

	if err := uc.tripRepo.SaveTransition(ctx, trip); err != nil {
		return nil, err
	}

	uc.publish(ctx, constants.TopicTripApproved, trip, actorID)
	return trip, nil
}

// RejectTrip moves a pending or approved trip to rejected with a mandatory
// reason.
func (uc *tripUC) RejectTrip(ctx context.Context, id, actorID uuid.UUID, req models.RejectTripRequest) (*models.Trip, error) {
	if req.Reason == "" {
		return nil, apperrors.NewValidation("reason", "is required")
	}

	trip, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := EnsureTransition(ActionReject, trip.Status); err != nil {
		return nil, err
	}

	trip.Status = models.TripStatusRejected
	trip.RejectionReason = req.Reason
	trip.UpdatedAt = models.Now()

	if err := uc.tripRepo.SaveTransition(ctx, trip); err != nil {
		return nil, err
	}

	uc.publish(ctx, constants.TopicTripRejected, trip, actorID)
	return trip, nil
}

// StartTrip moves an approved or assigned trip to in_progress, recording the
// departure time and odometer reading.
func (uc *tripUC) StartTrip(ctx context.Context, id, actorID uuid.UUID, req models.StartTripRequest) (*models.Trip, error) {
	if req.OdometerStart < 0 {
		return nil, apperrors.NewValidation("odometer_start", "must not be negative")
	}

	trip, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := EnsureTransition(ActionStart, trip.Status); err != nil {
		return nil, err
	}

	now := models.Now()
	trip.Status = models.TripStatusInProgress
	trip.ActualStartTime = &now
	trip.OdometerStart = &req.OdometerStart
	trip.UpdatedAt = now

	if err := uc.tripRepo.SaveTransition(ctx, trip); err != nil {
		return nil, err
	}

	uc.publish(ctx, constants.TopicTripStarted, trip, actorID)
	return trip, nil
}

// CompleteTrip moves an in_progress trip to completed, recomputes the cost
// total and distance traveled, and produces the driver counter delta that
// the repository applies inside the completion transaction. The state guard
// makes a second completion impossible, so counters are incremented exactly
// once per trip.
func (uc *tripUC) CompleteTrip(ctx context.Context, id, actorID uuid.UUID, req models.CompleteTripRequest) (*models.Trip, error) {
	if req.OdometerEnd < 0 {
		return nil, apperrors.NewValidation("odometer_end", "must not be negative")
	}
	if req.FuelConsumed < 0 {
		return nil, apperrors.NewValidation("fuel_consumed", "must not be negative")
	}
	if req.FuelCost < 0 {
		return nil, apperrors.NewValidation("fuel_cost", "must not be negative")
	}
	if req.OtherCosts < 0 {
		return nil, apperrors.NewValidation("other_costs", "must not be negative")
	}

	trip, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := EnsureTransition(ActionComplete, trip.Status); err != nil {
		return nil, err
	}
	if trip.OdometerStart != nil && req.OdometerEnd < *trip.OdometerStart {
		return nil, apperrors.NewValidation("odometer_end", "must not be less than odometer_start")
	}

	now := models.Now()
	trip.Status = models.TripStatusCompleted
	trip.ActualEndTime = &now
	trip.OdometerEnd = &req.OdometerEnd
	trip.FuelConsumed = req.FuelConsumed
	trip.FuelCost = req.FuelCost
	trip.OtherCosts = req.OtherCosts
	trip.TotalCost = req.FuelCost + req.OtherCosts
	if req.Notes != "" {
		trip.Notes = req.Notes
	}
	if trip.OdometerStart != nil {
		distance := req.OdometerEnd - *trip.OdometerStart
		trip.DistanceTraveled = &distance
	}
	trip.UpdatedAt = now

	delta, err := uc.driverDelta(ctx, trip)
	if err != nil {
		return nil, err
	}

	if err := uc.tripRepo.CompleteTrip(ctx, trip, delta); err != nil {
		return nil, err
	}

	uc.publish(ctx, constants.TopicTripCompleted, trip, actorID)
	return trip, nil
}

// CancelTrip moves a not-yet-started trip to cancelled.
func (uc *tripUC) CancelTrip(ctx context.Context, id, actorID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := EnsureTransition(ActionCancel, trip.Status); err != nil {
		return nil, err
	}

	trip.Status = models.TripStatusCancelled
	trip.UpdatedAt = models.Now()

	if err := uc.tripRepo.SaveTransition(ctx, trip); err != nil {
		return nil, err
	}

	uc.publish(ctx, constants.TopicTripCancelled, trip, actorID)
	return trip, nil
}

// ReassignVehicle swaps the vehicle on a trip without changing its status,
// recording why in the trip's assignment record.
func (uc *tripUC) ReassignVehicle(ctx context.Context, id uuid.UUID, req models.ReassignVehicleRequest) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := EnsureTransition(ActionReassignVehicle, trip.Status); err != nil {
		return nil, err
	}

	if _, err := uc.tripRepo.GetVehicle(ctx, req.VehicleID); err != nil {
		return nil, err
	}

	update := models.VehicleAssignmentUpdate{
		TripID:       trip.ID,
		OldVehicleID: trip.VehicleID,
		NewVehicleID: req.VehicleID,
		Reason:       req.Reason,
		Notes:        req.Notes,
	}

	trip.VehicleID = req.VehicleID
	trip.UpdatedAt = models.Now()

	if err := uc.tripRepo.ReassignVehicle(ctx, trip, update); err != nil {
		return nil, err
	}
	return trip, nil
}

// DeleteTrip hard-removes a pending trip and its passengers.
func (uc *tripUC) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	trip, err := uc.tripRepo.GetTrip(ctx, id)
	if err != nil {
		return err
	}
	if err := EnsureTransition(ActionDelete, trip.Status); err != nil {
		return err
	}
	return uc.tripRepo.DeleteTrip(ctx, id)
}

// driverDelta builds the counter-increment instruction for the vehicle's
// assigned driver, or nil when there is no driver or no computed distance.
func (uc *tripUC) driverDelta(ctx context.Context, trip *models.Trip) (*models.DriverCounterDelta, error) {
	vehicle, err := uc.tripRepo.GetVehicle(ctx, trip.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.DriverID == nil || trip.DistanceTraveled == nil {
		return nil, nil
	}
	return &models.DriverCounterDelta{
		DriverID:      *vehicle.DriverID,
		DistanceKm:    *trip.DistanceTraveled,
		TripsComplete: 1,
	}, nil
}

// publish sends a lifecycle event; failures are logged, not propagated, as
// events are best-effort notifications outside the storage transaction.
func (uc *tripUC) publish(ctx context.Context, topic string, trip *models.Trip, actorID uuid.UUID) {
	event := &models.TripEvent{
		TripID:     trip.ID,
		TripNumber: trip.TripNumber,
		Status:     trip.Status,
		ActorID:    actorID,
		OccurredAt: models.Now(),
	}
	if err := uc.tripGW.PublishTripEvent(ctx, topic, event); err != nil {
		logger.Warn("failed to publish trip event",
			logger.String("topic", topic),
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}
}

func buildPassengers(tripID uuid.UUID, inputs []models.TripPassengerInput) []models.TripPassenger {
	passengers := make([]models.TripPassenger, 0, len(inputs))
	for _, in := range inputs {
		passengers = append(passengers, models.TripPassenger{
			TripID:        tripID,
			UserID:        in.UserID,
			PickupStopID:  in.PickupStopID,
			DropoffStopID: in.DropoffStopID,
			Status:        "confirmed",
		})
	}
	return passengers
}

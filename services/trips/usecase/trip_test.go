package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityarama/fleetops/internal/pkg/apperrors"
	"github.com/adityarama/fleetops/internal/pkg/constants"
	"github.com/adityarama/fleetops/internal/pkg/models"
	"github.com/adityarama/fleetops/services/trips/mocks"
)

func newTripUCWithMocks(t *testing.T) (*gomock.Controller, *mocks.MockTripRepo, *mocks.MockTripGW, *tripUC) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(&models.Config{}, mockRepo, mockGW).(*tripUC)
	return ctrl, mockRepo, mockGW, uc
}

func pendingTrip(vehicleID uuid.UUID) *models.Trip {
	return &models.Trip{
		ID:           uuid.New(),
		TripNumber:   "TRP-2026-001",
		VehicleID:    vehicleID,
		Purpose:      "Site survey",
		ScheduleType: models.ScheduleAdhoc,
		Priority:     models.PriorityMedium,
		Status:       models.TripStatusPending,
		StartTime:    "08:00",
		EndTime:      "17:00",
	}
}

func TestTripUC_CreateTrip_Success(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	vehicleID := uuid.New()
	req := models.CreateTripRequest{
		TripNumber:    "TRP-2026-001",
		VehicleID:     vehicleID,
		Purpose:       "Site survey",
		ScheduleType:  models.ScheduleAdhoc,
		Priority:      models.PriorityMedium,
		ScheduledDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:     "08:00",
		EndTime:       "17:00",
		Passengers: []models.TripPassengerInput{
			{UserID: uuid.New()},
		},
	}

	mockRepo.EXPECT().
		GetVehicle(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID}, nil)
	mockRepo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	trip, err := uc.CreateTrip(context.Background(), actorID, req)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusPending, trip.Status)
	assert.Equal(t, actorID, trip.RequestedBy)
	require.Len(t, trip.Passengers, 1)
	assert.Equal(t, "confirmed", trip.Passengers[0].Status)
	assert.Equal(t, trip.ID, trip.Passengers[0].TripID)
}

func TestTripUC_CreateTrip_MissingTripNumber(t *testing.T) {
	ctrl, _, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	req := models.CreateTripRequest{
		VehicleID:    uuid.New(),
		Purpose:      "Site survey",
		ScheduleType: models.ScheduleAdhoc,
		Priority:     models.PriorityMedium,
		StartTime:    "08:00",
		EndTime:      "17:00",
	}

	_, err := uc.CreateTrip(context.Background(), uuid.New(), req)

	assert.True(t, apperrors.IsValidation(err))
}

func TestTripUC_CreateTrip_UnknownScheduleType(t *testing.T) {
	ctrl, _, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	req := models.CreateTripRequest{
		TripNumber:   "TRP-2026-002",
		VehicleID:    uuid.New(),
		Purpose:      "Site survey",
		ScheduleType: "joyride",
		Priority:     models.PriorityMedium,
		StartTime:    "08:00",
		EndTime:      "17:00",
	}

	_, err := uc.CreateTrip(context.Background(), uuid.New(), req)

	assert.True(t, apperrors.IsValidation(err))
}

func TestTripUC_CreateTrip_VehicleNotFound(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	vehicleID := uuid.New()
	req := models.CreateTripRequest{
		TripNumber:   "TRP-2026-003",
		VehicleID:    vehicleID,
		Purpose:      "Site survey",
		ScheduleType: models.ScheduleAdhoc,
		Priority:     models.PriorityMedium,
		StartTime:    "08:00",
		EndTime:      "17:00",
	}

	mockRepo.EXPECT().
		GetVehicle(gomock.Any(), vehicleID).
		Return(nil, apperrors.NewNotFound("vehicle", vehicleID.String()))

	_, err := uc.CreateTrip(context.Background(), uuid.New(), req)

	assert.True(t, apperrors.IsNotFound(err))
}

func TestTripUC_ApproveTrip_Success(t *testing.T) {
	ctrl, mockRepo, mockGW, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	trip := pendingTrip(uuid.New())

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().SaveTransition(gomock.Any(), trip).Return(nil)
	mockGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripApproved, gomock.Any()).
		Return(nil)

	approved, err := uc.ApproveTrip(context.Background(), trip.ID, actorID)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, actorID, *approved.ApprovedBy)
}

func TestTripUC_ApproveTrip_AlreadyApproved(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	trip := pendingTrip(uuid.New())
	trip.Status = models.TripStatusApproved

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := uc.ApproveTrip(context.Background(), trip.ID, uuid.New())

	assert.True(t, apperrors.IsStateTransition(err))
}

func TestTripUC_RejectTrip_RequiresReason(t *testing.T) {
	ctrl, _, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	_, err := uc.RejectTrip(context.Background(), uuid.New(), uuid.New(), models.RejectTripRequest{})

	assert.True(t, apperrors.IsValidation(err))
}

func TestTripUC_RejectTrip_FromApproved(t *testing.T) {
	ctrl, mockRepo, mockGW, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	trip := pendingTrip(uuid.New())
	trip.Status = models.TripStatusApproved

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().SaveTransition(gomock.Any(), trip).Return(nil)
	mockGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripRejected, gomock.Any()).
		Return(nil)

	rejected, err := uc.RejectTrip(context.Background(), trip.ID, uuid.New(), models.RejectTripRequest{Reason: "vehicle unavailable"})

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusRejected, rejected.Status)
	assert.Equal(t, "vehicle unavailable", rejected.RejectionReason)
}

func TestTripUC_StartTrip_Success(t *testing.T) {
	ctrl, mockRepo, mockGW, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	trip := pendingTrip(uuid.New())
	trip.Status = models.TripStatusApproved

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().SaveTransition(gomock.Any(), trip).Return(nil)
	mockGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripStarted, gomock.Any()).
		Return(nil)

	started, err := uc.StartTrip(context.Background(), trip.ID, uuid.New(), models.StartTripRequest{OdometerStart: 45210.5})

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusInProgress, started.Status)
	require.NotNil(t, started.OdometerStart)
	assert.Equal(t, 45210.5, *started.OdometerStart)
	assert.NotNil(t, started.ActualStartTime)
}

func TestTripUC_StartTrip_FromAssigned(t *testing.T) {
	ctrl, mockRepo, mockGW, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	trip := pendingTrip(uuid.New())
	trip.Status = models.TripStatusAssigned

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().SaveTransition(gomock.Any(), trip).Return(nil)
	mockGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripStarted, gomock.Any()).
		Return(nil)

	started, err := uc.StartTrip(context.Background(), trip.ID, uuid.New(), models.StartTripRequest{OdometerStart: 100})

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusInProgress, started.Status)
}

func TestTripUC_StartTrip_NegativeOdometer(t *testing.T) {
	ctrl, _, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	_, err := uc.StartTrip(context.Background(), uuid.New(), uuid.New(), models.StartTripRequest{OdometerStart: -1})

	assert.True(t, apperrors.IsValidation(err))
}

func TestTripUC_CompleteTrip_Success(t *testing.T) {
	ctrl, mockRepo, mockGW, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	vehicleID := uuid.New()
	driverID := uuid.New()
	odoStart := 45000.0

	trip := pendingTrip(vehicleID)
	trip.Status = models.TripStatusInProgress
	trip.OdometerStart = &odoStart

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().
		GetVehicle(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID, DriverID: &driverID}, nil)
	mockRepo.EXPECT().
		CompleteTrip(gomock.Any(), trip, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Trip, delta *models.DriverCounterDelta) error {
			require.NotNil(t, delta)
			assert.Equal(t, driverID, delta.DriverID)
			assert.Equal(t, 120.0, delta.DistanceKm)
			assert.Equal(t, 1, delta.TripsComplete)
			return nil
		})
	mockGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripCompleted, gomock.Any()).
		Return(nil)

	req := models.CompleteTripRequest{
		OdometerEnd:  45120,
		FuelConsumed: 9.5,
		FuelCost:     150000,
		OtherCosts:   25000,
	}
	completed, err := uc.CompleteTrip(context.Background(), trip.ID, uuid.New(), req)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, completed.Status)
	assert.Equal(t, 175000.0, completed.TotalCost)
	require.NotNil(t, completed.DistanceTraveled)
	assert.Equal(t, 120.0, *completed.DistanceTraveled)
	assert.NotNil(t, completed.ActualEndTime)
}

func TestTripUC_CompleteTrip_OdometerEndBelowStart(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	odoStart := 45000.0
	trip := pendingTrip(uuid.New())
	trip.Status = models.TripStatusInProgress
	trip.OdometerStart = &odoStart

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := uc.CompleteTrip(context.Background(), trip.ID, uuid.New(), models.CompleteTripRequest{OdometerEnd: 44900})

	assert.True(t, apperrors.IsValidation(err))
}

func TestTripUC_CompleteTrip_AlreadyCompleted(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	trip := pendingTrip(uuid.New())
	trip.Status = models.TripStatusCompleted

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := uc.CompleteTrip(context.Background(), trip.ID, uuid.New(), models.CompleteTripRequest{OdometerEnd: 45120})

	assert.True(t, apperrors.IsStateTransition(err))
}

func TestTripUC_CompleteTrip_NoDriverSkipsCounters(t *testing.T) {
	ctrl, mockRepo, mockGW, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	vehicleID := uuid.New()
	odoStart := 100.0
	trip := pendingTrip(vehicleID)
	trip.Status = models.TripStatusInProgress
	trip.OdometerStart = &odoStart

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().
		GetVehicle(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID}, nil)
	mockRepo.EXPECT().CompleteTrip(gomock.Any(), trip, nil).Return(nil)
	mockGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripCompleted, gomock.Any()).
		Return(nil)

	_, err := uc.CompleteTrip(context.Background(), trip.ID, uuid.New(), models.CompleteTripRequest{OdometerEnd: 130})

	assert.NoError(t, err)
}

func TestTripUC_CompleteTrip_PublishFailureIsNotFatal(t *testing.T) {
	ctrl, mockRepo, mockGW, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	vehicleID := uuid.New()
	odoStart := 100.0
	trip := pendingTrip(vehicleID)
	trip.Status = models.TripStatusInProgress
	trip.OdometerStart = &odoStart

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().
		GetVehicle(gomock.Any(), vehicleID).
		Return(&models.Vehicle{ID: vehicleID}, nil)
	mockRepo.EXPECT().CompleteTrip(gomock.Any(), trip, nil).Return(nil)
	mockGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripCompleted, gomock.Any()).
		Return(assert.AnError)

	_, err := uc.CompleteTrip(context.Background(), trip.ID, uuid.New(), models.CompleteTripRequest{OdometerEnd: 130})

	assert.NoError(t, err)
}

func TestTripUC_CancelTrip_InProgressBlocked(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	trip := pendingTrip(uuid.New())
	trip.Status = models.TripStatusInProgress

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := uc.CancelTrip(context.Background(), trip.ID, uuid.New())

	assert.True(t, apperrors.IsStateTransition(err))
}

func TestTripUC_UpdateTrip_ReplacesPassengers(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	trip := pendingTrip(uuid.New())
	newPassengers := []models.TripPassengerInput{
		{UserID: uuid.New()},
		{UserID: uuid.New()},
	}

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().
		UpdateTrip(gomock.Any(), trip, gomock.Len(2), true).
		Return(nil)

	updated, err := uc.UpdateTrip(context.Background(), trip.ID, models.UpdateTripRequest{Passengers: &newPassengers})

	require.NoError(t, err)
	assert.Len(t, updated.Passengers, 2)
}

func TestTripUC_UpdateTrip_KeepsPassengersWhenOmitted(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	trip := pendingTrip(uuid.New())
	purpose := "Quarterly audit visit"

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().
		UpdateTrip(gomock.Any(), trip, gomock.Any(), false).
		Return(nil)

	updated, err := uc.UpdateTrip(context.Background(), trip.ID, models.UpdateTripRequest{Purpose: &purpose})

	require.NoError(t, err)
	assert.Equal(t, purpose, updated.Purpose)
}

func TestTripUC_UpdateTrip_AfterStartBlocked(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	trip := pendingTrip(uuid.New())
	trip.Status = models.TripStatusInProgress

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	_, err := uc.UpdateTrip(context.Background(), trip.ID, models.UpdateTripRequest{})

	assert.True(t, apperrors.IsStateTransition(err))
}

func TestTripUC_ReassignVehicle_Success(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	oldVehicleID := uuid.New()
	newVehicleID := uuid.New()
	trip := pendingTrip(oldVehicleID)
	trip.Status = models.TripStatusInProgress

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().
		GetVehicle(gomock.Any(), newVehicleID).
		Return(&models.Vehicle{ID: newVehicleID}, nil)
	mockRepo.EXPECT().
		ReassignVehicle(gomock.Any(), trip, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Trip, update models.VehicleAssignmentUpdate) error {
			assert.Equal(t, oldVehicleID, update.OldVehicleID)
			assert.Equal(t, newVehicleID, update.NewVehicleID)
			return nil
		})

	updated, err := uc.ReassignVehicle(context.Background(), trip.ID, models.ReassignVehicleRequest{
		VehicleID: newVehicleID,
		Reason:    "breakdown",
	})

	require.NoError(t, err)
	assert.Equal(t, newVehicleID, updated.VehicleID)
}

func TestTripUC_DeleteTrip_NonPendingBlocked(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	trip := pendingTrip(uuid.New())
	trip.Status = models.TripStatusApproved

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	err := uc.DeleteTrip(context.Background(), trip.ID)

	assert.True(t, apperrors.IsStateTransition(err))
}

func TestTripUC_DeleteTrip_Pending(t *testing.T) {
	ctrl, mockRepo, _, uc := newTripUCWithMocks(t)
	defer ctrl.Finish()

	trip := pendingTrip(uuid.New())

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().DeleteTrip(gomock.Any(), trip.ID).Return(nil)

	err := uc.DeleteTrip(context.Background(), trip.ID)

	assert.NoError(t, err)
}

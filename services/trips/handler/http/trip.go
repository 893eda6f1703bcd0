package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adityarama/fleetops/internal/pkg/logger"
	"github.com/adityarama/fleetops/internal/pkg/middleware"
	"github.com/adityarama/fleetops/internal/pkg/models"
	"github.com/adityarama/fleetops/internal/utils"
	"github.com/adityarama/fleetops/services/trips"
)

// TripHandler handles HTTP requests for the trip lifecycle
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// RegisterRoutes registers trip endpoints on the given group
func (h *TripHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/trips", h.CreateTrip)
	g.GET("/trips", h.ListTrips)
	g.GET("/trips/:tripID", h.GetTrip)
	g.PUT("/trips/:tripID", h.UpdateTrip)
	g.DELETE("/trips/:tripID", h.DeleteTrip)
	g.POST("/trips/:tripID/approve", h.ApproveTrip)
	g.POST("/trips/:tripID/reject", h.RejectTrip)
	g.POST("/trips/:tripID/start", h.StartTrip)
	g.POST("/trips/:tripID/complete", h.CompleteTrip)
	g.POST("/trips/:tripID/cancel", h.CancelTrip)
	g.POST("/trips/:tripID/reassign-vehicle", h.ReassignVehicle)
}

// CreateTrip handles trip creation requests
func (h *TripHandler) CreateTrip(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), actorID, req)
	if err != nil {
		logger.Error("failed to create trip", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", trip)
}

// UpdateTrip handles trip updates while the trip is still editable
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.UpdateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.UpdateTrip(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip updated successfully", trip)
}

// GetTrip handles trip retrieval with its passenger list
func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", trip)
}

// ListTrips handles trip listing with optional filters
func (h *TripHandler) ListTrips(c echo.Context) error {
	filter, err := parseTripFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	list, err := h.tripUC.ListTrips(c.Request().Context(), filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", list)
}

// ApproveTrip handles trip approval
func (h *TripHandler) ApproveTrip(c echo.Context) error {
	id, actorID, err := tripAction(c)
	if err != nil {
		return err
	}

	trip, err := h.tripUC.ApproveTrip(c.Request().Context(), id, actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip approved successfully", trip)
}

// RejectTrip handles trip rejection with a mandatory reason
func (h *TripHandler) RejectTrip(c echo.Context) error {
	id, actorID, err := tripAction(c)
	if err != nil {
		return err
	}

	var req models.RejectTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.RejectTrip(c.Request().Context(), id, actorID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip rejected successfully", trip)
}

// StartTrip handles the transition into in_progress with the odometer reading
func (h *TripHandler) StartTrip(c echo.Context) error {
	id, actorID, err := tripAction(c)
	if err != nil {
		return err
	}

	var req models.StartTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.StartTrip(c.Request().Context(), id, actorID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip started successfully", trip)
}

// CompleteTrip handles trip completion with odometer and cost figures
func (h *TripHandler) CompleteTrip(c echo.Context) error {
	id, actorID, err := tripAction(c)
	if err != nil {
		return err
	}

	var req models.CompleteTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.CompleteTrip(c.Request().Context(), id, actorID, req)
	if err != nil {
		logger.Error("failed to complete trip", logger.String("trip_id", id.String()), logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip completed successfully", trip)
}

// CancelTrip handles trip cancellation
func (h *TripHandler) CancelTrip(c echo.Context) error {
	id, actorID, err := tripAction(c)
	if err != nil {
		return err
	}

	trip, err := h.tripUC.CancelTrip(c.Request().Context(), id, actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled successfully", trip)
}

// ReassignVehicle handles swapping the trip's vehicle before or during the trip
func (h *TripHandler) ReassignVehicle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.ReassignVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.ReassignVehicle(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle reassigned successfully", trip)
}

// DeleteTrip handles deletion of trips that never left the pending state
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.tripUC.DeleteTrip(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip deleted successfully", nil)
}

func tripAction(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, utils.BadRequestResponse(c, "Invalid trip ID")
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, utils.UnauthorizedResponse(c, "Missing authenticated user")
	}

	return id, actorID, nil
}

func parseTripFilter(c echo.Context) (models.TripFilter, error) {
	filter := models.TripFilter{}

	if s := c.QueryParam("status"); s != "" {
		status := models.TripStatus(s)
		filter.Status = &status
	}
	if s := c.QueryParam("priority"); s != "" {
		priority := models.TripPriority(s)
		filter.Priority = &priority
	}
	if s := c.QueryParam("vehicle_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, errors.New("invalid vehicle_id filter")
		}
		filter.VehicleID = &id
	}
	if s := c.QueryParam("department_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, errors.New("invalid department_id filter")
		}
		filter.DepartmentID = &id
	}

	return filter, nil
}

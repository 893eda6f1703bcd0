package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adityarama/fleetops/internal/pkg/logger"
	"github.com/adityarama/fleetops/internal/pkg/models"
	"github.com/adityarama/fleetops/internal/utils"
	"github.com/adityarama/fleetops/services/stops"
)

// StopHandler handles HTTP requests for stop reference data
type StopHandler struct {
	stopUC stops.StopUC
}

// NewStopHandler creates a new stop HTTP handler
func NewStopHandler(stopUC stops.StopUC) *StopHandler {
	return &StopHandler{stopUC: stopUC}
}

// RegisterRoutes registers stop endpoints on the given group
func (h *StopHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/stops", h.CreateStop)
	g.PUT("/stops/:stopID", h.UpdateStop)
	g.GET("/stops/:stopID", h.GetStop)
	g.GET("/stops", h.ListStops)
	g.GET("/stops/nearby", h.NearbyStops)
}

// CreateStop handles stop creation
func (h *StopHandler) CreateStop(c echo.Context) error {
	var req models.CreateStopRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	stop, err := h.stopUC.CreateStop(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	logger.Info("stop created",
		logger.String("stop_id", stop.ID.String()),
		logger.String("name", stop.Name))

	return utils.SuccessResponse(c, http.StatusCreated, "Stop created successfully", stop)
}

// UpdateStop handles stop updates
func (h *StopHandler) UpdateStop(c echo.Context) error {
	id, err := uuid.Parse(c.Param("stopID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid stop ID")
	}

	var req models.UpdateStopRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	stop, err := h.stopUC.UpdateStop(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stop updated successfully", stop)
}

// GetStop handles stop retrieval
func (h *StopHandler) GetStop(c echo.Context) error {
	id, err := uuid.Parse(c.Param("stopID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid stop ID")
	}

	stop, err := h.stopUC.GetStop(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stop retrieved successfully", stop)
}

// ListStops handles stop listing
func (h *StopHandler) ListStops(c echo.Context) error {
	list, err := h.stopUC.ListStops(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stops retrieved successfully", list)
}

// NearbyStops handles radius lookups around a coordinate
func (h *StopHandler) NearbyStops(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius_km")
		}
	}

	nearby, err := h.stopUC.NearbyStops(c.Request().Context(), lat, lon, radiusKm)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby stops retrieved successfully", nearby)
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adityarama/fleetops/internal/pkg/logger"
	"github.com/adityarama/fleetops/internal/pkg/models"
	"github.com/adityarama/fleetops/internal/utils"
	"github.com/adityarama/fleetops/services/routes"
)

// RouteHandler handles HTTP requests for vehicle routes
type RouteHandler struct {
	routeUC routes.RouteUC
}

// NewRouteHandler creates a new route HTTP handler
func NewRouteHandler(routeUC routes.RouteUC) *RouteHandler {
	return &RouteHandler{routeUC: routeUC}
}

// RegisterRoutes registers vehicle route endpoints on the given group
func (h *RouteHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/routes", h.CreateRoute)
	g.PUT("/routes/:routeID", h.UpdateRoute)
	g.GET("/routes/:routeID", h.GetRoute)
	g.GET("/routes", h.ListRoutes)
	g.DELETE("/routes/:routeID", h.DeleteRoute)
}

// CreateRoute handles route creation
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	var req models.CreateRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	route, err := h.routeUC.CreateRoute(c.Request().Context(), req)
	if err != nil {
		logger.Error("failed to create route", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Route created successfully", route)
}

// UpdateRoute handles route updates, replacing the stop sequence wholesale
func (h *RouteHandler) UpdateRoute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("routeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	var req models.UpdateRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	route, err := h.routeUC.UpdateRoute(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route updated successfully", route)
}

// GetRoute handles route retrieval with its stop sequence
func (h *RouteHandler) GetRoute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("routeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	route, err := h.routeUC.GetRoute(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route retrieved successfully", route)
}

// ListRoutes handles route listing
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	list, err := h.routeUC.ListRoutes(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Routes retrieved successfully", list)
}

// DeleteRoute handles route deletion
func (h *RouteHandler) DeleteRoute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("routeID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	if err := h.routeUC.DeleteRoute(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route deleted successfully", nil)
}

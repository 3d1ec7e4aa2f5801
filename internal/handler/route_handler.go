package handler

import (
	"net/http"
	"strconv"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/application"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/middleware"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RouteHandler handles HTTP requests for truck route generation.
type RouteHandler struct {
	service *application.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service *application.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// RegisterRoutes registers all route endpoints on the given router group.
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	routes := r.Group("/api/v1/routes")
	{
		routes.POST("/truck", h.GenerateRoute)
		routes.GET("/tokens/:id", h.GetRouteToken)
	}
}

// GenerateRoute handles POST /api/v1/routes/truck. On success the directions service
// response is written as-is.
func (h *RouteHandler) GenerateRoute(c *gin.Context) {
	var req application.GenerateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GenerateRoute(c.Request.Context(), middleware.GetRequestID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRouteToken handles GET /api/v1/routes/tokens/:id.
func (h *RouteHandler) GetRouteToken(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid route token ID")
		return
	}

	result, err := h.service.GetRouteToken(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}

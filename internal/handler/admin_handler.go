package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/application"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/response"
)

// AdminRouteHandler handles admin HTTP requests for the route token ledger.
type AdminRouteHandler struct {
	service *application.RouteService
}

// NewAdminRouteHandler creates a new AdminRouteHandler.
func NewAdminRouteHandler(service *application.RouteService) *AdminRouteHandler {
	return &AdminRouteHandler{service: service}
}

// RegisterRoutes registers admin route token routes.
func (h *AdminRouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/api/v1/admin")
	{
		admin.GET("/route-tokens", h.ListRouteTokens)
	}
}

// ListRouteTokens handles GET /api/v1/admin/route-tokens.
func (h *AdminRouteHandler) ListRouteTokens(c *gin.Context) {
	page, limit := parsePagination(c)

	result, err := h.service.ListRouteTokens(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

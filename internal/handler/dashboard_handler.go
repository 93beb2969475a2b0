package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ischool/courseinfo-backend/internal/registry"
	"github.com/ischool/courseinfo-backend/internal/response"
	"github.com/ischool/courseinfo-backend/internal/service"
	"github.com/rs/zerolog"
)

// DashboardHandler handles the admin index.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	reg              *registry.Registry
	log              zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService, reg *registry.Registry, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		reg:              reg,
		log:              log.With().Str("component", "dashboard_handler").Logger(),
	}
}

// GetDashboardData godoc
// GET /admin/
// Returns every registered entity with its record count, plus the newest registrations.
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	data, err := h.dashboardService.Summary(c.Request.Context(), h.reg)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, data)
}

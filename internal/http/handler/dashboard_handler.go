package handler

import (
	"net/http"

	"github.com/xbl/lead-tracker/internal/service"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Summary godoc
// @Summary Dashboard summary
// @Description Lead, customer and employee totals, leads per status and the five earliest due follow-ups
// @Tags Dashboard
// @Produce json
// @Param asOf query string false "Date (YYYY-MM-DD), default today"
// @Success 200 {object} domain.DashboardSummaryDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	asOf, ok := optionalDate(w, r, "asOf")
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(r.Context(), asOf)
	if err != nil {
		respondServiceError(w, h.logger, err, "load dashboard")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

package handler

import (
	"net/http"

	"hospital-management/internal/usecase"
	"hospital-management/pkg/listquery"
	"hospital-management/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// Statistics returns the headline counters
// @Summary Dashboard statistics
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard/statistics [get]
func (h *DashboardHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.Statistics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard statistics")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard statistics retrieved successfully", stats)
}

func (h *DashboardHandler) RecentAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.dashboardUsecase.RecentAppointments(r.Context(), listquery.Limit(r.URL.Query(), defaultRecentLimit))
	if err != nil {
		response.InternalServerError(w, "Failed to get recent appointments")
		return
	}

	response.Success(w, http.StatusOK, "Recent appointments retrieved successfully", appointments)
}

func (h *DashboardHandler) TodayAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.dashboardUsecase.TodayAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get today's appointments")
		return
	}

	response.Success(w, http.StatusOK, "Today's appointments retrieved successfully", appointments)
}

func (h *DashboardHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.dashboardUsecase.Revenue(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get revenue")
		return
	}

	response.Success(w, http.StatusOK, "Revenue retrieved successfully", revenue)
}

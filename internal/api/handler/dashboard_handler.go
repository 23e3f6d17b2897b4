package handler

import (
	"net/http"
	"strconv"
	"time"

	"solvegrid/internal/api/middleware"
	"solvegrid/internal/app/service"
	"solvegrid/internal/common"
	"solvegrid/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(ds *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Get("/", h.getDashboard)
	r.Get("/calendar", h.getCalendar)
	r.Get("/heatmap", h.getHeatmap)
}

func (h *DashboardHandler) getDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, dashboard)
}

// getCalendar serves the 6x7 month grid. year/month default to the
// current period in the display timezone; explicit garbage is a 400.
func (h *DashboardHandler) getCalendar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	now := time.Now().In(config.AppConfig.DisplayLocation)
	year, err := queryInt(r, "year", now.Year())
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid year parameter")
		return
	}
	month, err := queryInt(r, "month", int(now.Month()))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid month parameter")
		return
	}

	cells, err := h.dashboardService.GetMonthGrid(r.Context(), userID, year, time.Month(month))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, cells)
}

func (h *DashboardHandler) getHeatmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	now := time.Now().In(config.AppConfig.DisplayLocation)
	year, err := queryInt(r, "year", now.Year())
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid year parameter")
		return
	}

	heatmap, err := h.dashboardService.GetYearHeatmap(r.Context(), userID, year)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, heatmap)
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

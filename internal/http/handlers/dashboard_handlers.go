package handlers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/restaurant-inventory/internal/currency"
)

// GetDashboardHandler godoc
// @Summary Dashboard summary for the actor's tenant
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param currency query string false "Display currency code (default USD)"
// @Success 200 {object} DashboardResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	_, sc, err := scopeFor(r)
	if err != nil {
		errorJSON(w, http.StatusForbidden, "No tenant access")
		return
	}

	code := r.URL.Query().Get("currency")
	if code == "" {
		code = "USD"
	}
	if !currency.IsSupported(code) {
		errorJSON(w, http.StatusBadRequest, "Unsupported currency")
		return
	}

	summary, err := reportEngine.DashboardSummary(r.Context(), sc)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute dashboard summary")
		errorJSON(w, http.StatusInternalServerError, "Failed to compute dashboard summary")
		return
	}

	writeJSON(w, http.StatusOK, DashboardResult{
		Summary:             summary,
		Currency:            code,
		MonthlyUsageDisplay: currency.Format(summary.MonthlyUsage, code),
	})
}

// GetOverviewHandler godoc
// @Summary Monthly usage and stock trend
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param months query int false "Trailing months to include (default 6)"
// @Success 200 {object} OverviewResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /analytics/overview [get]
func GetOverviewHandler(w http.ResponseWriter, r *http.Request) {
	_, sc, err := scopeFor(r)
	if err != nil {
		errorJSON(w, http.StatusForbidden, "No tenant access")
		return
	}

	months := 6
	if monthsStr := r.URL.Query().Get("months"); monthsStr != "" {
		months, err = strconv.Atoi(monthsStr)
		if err != nil || months <= 0 || months > 24 {
			errorJSON(w, http.StatusBadRequest, "Invalid months")
			return
		}
	}

	buckets, err := reportEngine.MonthlyOverview(r.Context(), sc, months)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute monthly overview")
		errorJSON(w, http.StatusInternalServerError, "Failed to compute monthly overview")
		return
	}
	writeJSON(w, http.StatusOK, OverviewResult{Data: buckets})
}

// GetMonitoringHandler godoc
// @Summary Process request metrics
// @Tags monitoring
// @Produce json
// @Security BearerAuth
// @Success 200 {object} monitoring.Snapshot
// @Failure 403 {object} map[string]string
// @Router /monitoring [get]
func GetMonitoringHandler(w http.ResponseWriter, r *http.Request) {
	if metrics == nil {
		errorJSON(w, http.StatusServiceUnavailable, "Monitoring not enabled")
		return
	}
	writeJSON(w, http.StatusOK, metrics.Snapshot())
}

// HealthzHandler godoc
// @Summary Liveness probe
// @Tags monitoring
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthzHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/repo"
	"github.com/rogerio-castellano/restaurant-inventory/internal/stock"
)

// GetActivityHandler godoc
// @Summary List activity log entries in the actor's tenant
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by adjustment type (added, removed, adjusted)"
// @Param user query string false "Filter by acting user name"
// @Param limit query int false "Max entries (default 100)"
// @Success 200 {object} ActivitiesResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /activity [get]
func GetActivityHandler(w http.ResponseWriter, r *http.Request) {
	_, sc, err := scopeFor(r)
	if err != nil {
		errorJSON(w, http.StatusForbidden, "No tenant access")
		return
	}

	q := r.URL.Query()
	filter := repo.ActivityFilter{Limit: 100}
	if t := q.Get("type"); t != "" && t != "all" {
		filter.Type = t
	}
	if u := q.Get("user"); u != "" && u != "all" {
		filter.UserName = u
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			errorJSON(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		filter.Limit = limit
	}

	activities, err := activityRepo.List(r.Context(), sc, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch activity logs")
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch activity logs")
		return
	}
	if activities == nil {
		activities = []models.ActivityLog{}
	}
	writeJSON(w, http.StatusOK, ActivitiesResult{Activities: activities})
}

// CreateAdjustmentHandler godoc
// @Summary Apply a stock adjustment and record it
// @Description Adds, removes or sets the item's stock, reclassifies it and
// appends the activity entry in the same transaction.
// @Tags activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param adjustment body AdjustmentRequest true "Adjustment to apply"
// @Success 201 {object} AdjustmentResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /activity [post]
func CreateAdjustmentHandler(w http.ResponseWriter, r *http.Request) {
	actor, sc, err := scopeFor(r)
	if err != nil {
		errorJSON(w, http.StatusForbidden, "No tenant access")
		return
	}

	var req AdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.Type == "" || req.Item == "" || req.QuantityValue == nil {
		errorJSON(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	adj, err := stock.NewAdjustment(req.Type, *req.QuantityValue, req.Notes)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	var errForeignTenant = errors.New("item outside tenant")
	updated, entry, err := itemRepo.Adjust(r.Context(), req.Item,
		func(item models.InventoryItem) (models.InventoryItem, models.ActivityLog, error) {
			if !sc.Allows(item.CreatedBy) {
				return models.InventoryItem{}, models.ActivityLog{}, errForeignTenant
			}
			item, entry := stock.Apply(item, adj, actor, time.Now().UTC())
			return item, entry, nil
		})
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) || errors.Is(err, errForeignTenant) {
			errorJSON(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		log.Error().Err(err).Msg("failed to apply adjustment")
		errorJSON(w, http.StatusInternalServerError, "Failed to apply adjustment")
		return
	}

	if notifier != nil && updated.Status == string(stock.StatusCritical) {
		notifier.NotifyLowStock(updated)
	}
	writeJSON(w, http.StatusCreated, AdjustmentResult{Activity: entry, Item: updated})
}

// ExportActivityHandler godoc
// @Summary Export the tenant's activity log
// @Tags activity
// @Produce text/csv, application/json
// @Security BearerAuth
// @Param format query string true "Export format (csv or json)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /activity/export [get]
func ExportActivityHandler(w http.ResponseWriter, r *http.Request) {
	_, sc, err := scopeFor(r)
	if err != nil {
		errorJSON(w, http.StatusForbidden, "No tenant access")
		return
	}

	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		errorJSON(w, http.StatusBadRequest, "format must be 'csv' or 'json'")
		return
	}

	activities, err := activityRepo.List(r.Context(), sc, repo.ActivityFilter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch activity logs for export")
		errorJSON(w, http.StatusInternalServerError, "Failed to export activity logs")
		return
	}

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="activity.json"`)
		json.NewEncoder(w).Encode(activities)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="activity.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "type", "item", "item_name", "quantity", "timestamp", "user_name", "notes"})
		for _, e := range activities {
			_ = csvWriter.Write([]string{
				e.ID,
				e.Type,
				e.ItemID,
				e.ItemName,
				e.Quantity,
				e.Timestamp.Format(time.RFC3339),
				e.UserName,
				e.Notes,
			})
		}
		csvWriter.Flush()
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/repo"
	"github.com/rogerio-castellano/restaurant-inventory/internal/stock"
)

// GetInventoryHandler godoc
// @Summary List inventory items in the actor's tenant
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param status query string false "Comma-separated status filter (good,warning,critical)"
// @Success 200 {object} ItemsResult
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /inventory [get]
func GetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	_, sc, err := scopeFor(r)
	if err != nil {
		errorJSON(w, http.StatusForbidden, "No tenant access")
		return
	}

	q := r.URL.Query()
	filter := repo.ItemFilter{}
	if category := q.Get("category"); category != "" && category != "all" {
		filter.Category = category
	}
	if status := q.Get("status"); status != "" && status != "all" {
		filter.Statuses = strings.Split(status, ",")
	}

	items, err := itemRepo.GetAll(r.Context(), sc, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch inventory items")
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch inventory items")
		return
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	writeJSON(w, http.StatusOK, ItemsResult{Items: items})
}

// CreateItemHandler godoc
// @Summary Create an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} ItemResult
// @Failure 400 {object} map[string]map[string]string
// @Failure 500 {object} map[string]string
// @Router /inventory [post]
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	actor, sc, err := scopeFor(r)
	if err != nil {
		errorJSON(w, http.StatusForbidden, "No tenant access")
		return
	}

	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if validationErrors := validateItem(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": validationErrors})
		return
	}

	item := models.InventoryItem{
		Name:          req.Name,
		Category:      req.Category,
		CurrentStock:  req.CurrentStock,
		MinStock:      req.MinStock,
		Unit:          req.Unit,
		LastUpdated:   time.Now().UTC(),
		CreatedBy:     sc.AdminID,
		CreatedByName: actor.Name,
	}
	percent, status := stock.Classify(item.CurrentStock, item.MinStock)
	item.PercentRemaining = percent
	item.Status = string(status)

	created, err := itemRepo.Create(r.Context(), item)
	if err != nil {
		log.Error().Err(err).Msg("failed to create inventory item")
		errorJSON(w, http.StatusInternalServerError, "Failed to create inventory item")
		return
	}
	writeJSON(w, http.StatusCreated, ItemResult{Item: created})
}

// fetchScopedItem loads an item and hides records of foreign tenants behind
// a not-found, so existence doesn't leak across tenants.
func fetchScopedItem(w http.ResponseWriter, r *http.Request) (models.InventoryItem, bool) {
	_, sc, err := scopeFor(r)
	if err != nil {
		errorJSON(w, http.StatusForbidden, "No tenant access")
		return models.InventoryItem{}, false
	}

	id := chi.URLParam(r, "id")
	item, err := itemRepo.GetByID(r.Context(), id)
	if errors.Is(err, repo.ErrItemNotFound) || (err == nil && !sc.Allows(item.CreatedBy)) {
		errorJSON(w, http.StatusNotFound, "Inventory item not found")
		return models.InventoryItem{}, false
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch inventory item")
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch inventory item")
		return models.InventoryItem{}, false
	}
	return item, true
}

// GetItemByIDHandler godoc
// @Summary Get an inventory item by ID
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} ItemResult
// @Failure 404 {object} map[string]string
// @Router /inventory/{id} [get]
func GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	item, ok := fetchScopedItem(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ItemResult{Item: item})
}

// UpdateItemHandler godoc
// @Summary Update an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param item body ItemRequest true "Updated item"
// @Success 200 {object} ItemResult
// @Failure 400 {object} map[string]map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/{id} [put]
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	item, ok := fetchScopedItem(w, r)
	if !ok {
		return
	}

	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if validationErrors := validateItem(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": validationErrors})
		return
	}

	item.Name = req.Name
	item.Category = req.Category
	item.CurrentStock = req.CurrentStock
	item.MinStock = req.MinStock
	item.Unit = req.Unit
	item.LastUpdated = time.Now().UTC()
	percent, status := stock.Classify(item.CurrentStock, item.MinStock)
	item.PercentRemaining = percent
	item.Status = string(status)

	updated, err := itemRepo.Update(r.Context(), item)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			errorJSON(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		log.Error().Err(err).Msg("failed to update inventory item")
		errorJSON(w, http.StatusInternalServerError, "Failed to update inventory item")
		return
	}
	writeJSON(w, http.StatusOK, ItemResult{Item: updated})
}

// DeleteItemHandler godoc
// @Summary Delete an inventory item
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /inventory/{id} [delete]
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	item, ok := fetchScopedItem(w, r)
	if !ok {
		return
	}

	if err := itemRepo.Delete(r.Context(), item.ID); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			errorJSON(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		log.Error().Err(err).Msg("failed to delete inventory item")
		errorJSON(w, http.StatusInternalServerError, "Failed to delete inventory item")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

package repo

import (
	"context"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/scope"
)

// ItemFilter narrows item listings. Empty fields match everything.
type ItemFilter struct {
	Category string
	Statuses []string
}

// AdjustFunc transforms a freshly read item into its mutated form plus the
// activity entry describing the change. Implementations of Adjust run it
// while holding exclusive access to the item, so concurrent adjustments
// serialize instead of losing updates.
type AdjustFunc func(models.InventoryItem) (models.InventoryItem, models.ActivityLog, error)

// ItemRepository defines the interface for inventory item data operations.
type ItemRepository interface {
	Create(ctx context.Context, item models.InventoryItem) (models.InventoryItem, error)
	GetAll(ctx context.Context, sc scope.Scope, f ItemFilter) ([]models.InventoryItem, error)
	GetByID(ctx context.Context, id string) (models.InventoryItem, error)
	Update(ctx context.Context, item models.InventoryItem) (models.InventoryItem, error)
	Delete(ctx context.Context, id string) error

	// Adjust atomically applies mutate to the item and appends the returned
	// activity entry. Item update and log insert commit together or not at
	// all.
	Adjust(ctx context.Context, id string, mutate AdjustFunc) (models.InventoryItem, models.ActivityLog, error)
}

package repo

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/scope"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository,
// used by the handler tests. Adjust appends entries to the linked activity
// repository under the same lock, mirroring the transactional Postgres path.
type InMemoryItemRepository struct {
	mu       sync.Mutex
	items    []models.InventoryItem
	activity *InMemoryActivityRepository
}

func NewInMemoryItemRepository(activity *InMemoryActivityRepository) *InMemoryItemRepository {
	return &InMemoryItemRepository{activity: activity}
}

func (r *InMemoryItemRepository) Create(_ context.Context, item models.InventoryItem) (models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = uuid.NewString()
	item.Version = 1
	r.items = append(r.items, item)
	return item, nil
}

func (r *InMemoryItemRepository) GetAll(_ context.Context, sc scope.Scope, f ItemFilter) ([]models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.InventoryItem
	for _, item := range r.items {
		if !sc.Allows(item.CreatedBy) {
			continue
		}
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, item.Status) {
			continue
		}
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b models.InventoryItem) int {
		return b.LastUpdated.Compare(a.LastUpdated)
	})
	return out, nil
}

func (r *InMemoryItemRepository) GetByID(_ context.Context, id string) (models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.find(id)
}

func (r *InMemoryItemRepository) Update(_ context.Context, item models.InventoryItem) (models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.items {
		if existing.ID == item.ID {
			item.Version = existing.Version + 1
			r.items[i] = item
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryItemRepository) Adjust(_ context.Context, id string, mutate AdjustFunc) (models.InventoryItem, models.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, err := r.find(id)
	if err != nil {
		return models.InventoryItem{}, models.ActivityLog{}, err
	}

	updated, entry, err := mutate(item)
	if err != nil {
		return models.InventoryItem{}, models.ActivityLog{}, err
	}

	for i, existing := range r.items {
		if existing.ID == id {
			updated.Version = existing.Version + 1
			r.items[i] = updated
			break
		}
	}

	entry.ID = uuid.NewString()
	entry.Timestamp = time.Now().UTC()
	r.activity.append(entry)
	return updated, entry, nil
}

func (r *InMemoryItemRepository) find(id string) (models.InventoryItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

func (r *InMemoryItemRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

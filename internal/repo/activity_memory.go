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

type InMemoryActivityRepository struct {
	mu      sync.Mutex
	entries []models.ActivityLog
}

func NewInMemoryActivityRepository() *InMemoryActivityRepository {
	return &InMemoryActivityRepository{}
}

func (r *InMemoryActivityRepository) Append(_ context.Context, entry models.ActivityLog) (models.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = uuid.NewString()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

// append stores an already-stamped entry; used by InMemoryItemRepository.Adjust.
func (r *InMemoryActivityRepository) append(entry models.ActivityLog) {
	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()
}

func (r *InMemoryActivityRepository) List(_ context.Context, sc scope.Scope, f ActivityFilter) ([]models.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ActivityLog
	for _, e := range r.entries {
		if !sc.Allows(e.OwnerID) {
			continue
		}
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if f.UserName != "" && e.UserName != f.UserName {
			continue
		}
		if f.Since != nil && e.Timestamp.Before(*f.Since) {
			continue
		}
		if f.Until != nil && e.Timestamp.After(*f.Until) {
			continue
		}
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b models.ActivityLog) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *InMemoryActivityRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

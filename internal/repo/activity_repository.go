package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/scope"
)

// ActivityFilter narrows activity listings. Zero values match everything;
// Limit <= 0 means no limit.
type ActivityFilter struct {
	Type     string
	UserName string
	Since    *time.Time
	Until    *time.Time
	Limit    int
}

// ActivityRepository is the append-only store of stock-affecting events.
// There is deliberately no update or delete operation.
type ActivityRepository interface {
	Append(ctx context.Context, entry models.ActivityLog) (models.ActivityLog, error)
	// List returns entries in scope, newest first.
	List(ctx context.Context, sc scope.Scope, f ActivityFilter) ([]models.ActivityLog, error)
}

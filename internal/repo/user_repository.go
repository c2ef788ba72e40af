package repo

import (
	"context"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
)

// StaffFilter narrows staff listings. Empty fields match everything.
type StaffFilter struct {
	Role       string
	Department string
}

type UserRepository interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	// ListStaff returns the users owned by an admin, sorted by name.
	ListStaff(ctx context.Context, adminID string, f StaffFilter) ([]models.User, error)
	CountActiveStaff(ctx context.Context, adminID string) (int, error)
	TouchLastActive(ctx context.Context, id string) error
}

// Package scope implements the tenant access policy: an admin sees only the
// records of its own tenant, and non-admin actors inherit the visibility of
// the admin that owns them.
package scope

import (
	"errors"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
)

// ErrNoTenant is returned for non-admin actors with no owning admin; such an
// account cannot be scoped to any tenant and must be rejected.
var ErrNoTenant = errors.New("actor does not belong to a tenant")

// Scope restricts queries to one admin tenant. Items and activity entries
// match when CreatedBy/owner equals AdminID; staff listings match on the
// users' AdminID.
type Scope struct {
	AdminID string
}

// For resolves the tenant scope of an actor. Admins scope to themselves;
// staff and managers scope to their owning admin.
func For(actor models.User) (Scope, error) {
	if actor.IsAdmin() {
		return Scope{AdminID: actor.ID}, nil
	}
	if actor.AdminID == "" {
		return Scope{}, ErrNoTenant
	}
	return Scope{AdminID: actor.AdminID}, nil
}

// Allows reports whether a record owned by ownerID is visible in the scope.
func (s Scope) Allows(ownerID string) bool {
	return ownerID == s.AdminID
}

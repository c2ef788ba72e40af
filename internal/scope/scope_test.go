package scope

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
)

func TestForAdmin(t *testing.T) {
	admin := models.User{ID: "admin-1", Role: models.RoleAdmin}

	sc, err := For(admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.AdminID != "admin-1" {
		t.Errorf("AdminID = %q, want admin-1", sc.AdminID)
	}
}

func TestForStaffInheritsAdmin(t *testing.T) {
	staff := models.User{ID: "staff-1", Role: models.RoleStaff, AdminID: "admin-1"}

	sc, err := For(staff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.AdminID != "admin-1" {
		t.Errorf("AdminID = %q, want admin-1", sc.AdminID)
	}
}

func TestForOrphanStaffIsRejected(t *testing.T) {
	orphan := models.User{ID: "staff-1", Role: models.RoleStaff}

	_, err := For(orphan)
	if !errors.Is(err, ErrNoTenant) {
		t.Fatalf("err = %v, want ErrNoTenant", err)
	}
}

func TestAllows(t *testing.T) {
	sc := Scope{AdminID: "admin-1"}

	if !sc.Allows("admin-1") {
		t.Error("expected scope to allow its own tenant")
	}
	if sc.Allows("admin-2") {
		t.Error("expected scope to reject another tenant")
	}
	if sc.Allows("") {
		t.Error("expected scope to reject empty owner")
	}
}

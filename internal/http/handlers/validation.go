package handlers

import (
	"regexp"
	"slices"
	"strings"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateItem(req ItemRequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	if !slices.Contains(models.Categories, req.Category) {
		errs["category"] = "Unknown category"
	}
	if req.CurrentStock < 0 {
		errs["currentStock"] = "Current stock cannot be negative"
	}
	if req.MinStock < 0 {
		errs["minStock"] = "Min stock cannot be negative"
	}
	if strings.TrimSpace(req.Unit) == "" {
		errs["unit"] = "Unit is required"
	}
	return errs
}

var staffRoles = []string{models.RoleAdmin, models.RoleManager, models.RoleStaff}
var departments = []string{models.DepartmentManagement, models.DepartmentKitchen, models.DepartmentService}

// validateStaff mirrors the single-message style of the auth endpoints: the
// first failing rule wins.
func validateStaff(req StaffRequest) string {
	switch {
	case len(strings.TrimSpace(req.Name)) < 2:
		return "Name must be at least 2 characters"
	case !emailPattern.MatchString(req.Email):
		return "Invalid email address"
	case !slices.Contains(staffRoles, req.Role):
		return "Invalid role"
	case !slices.Contains(departments, req.Department):
		return "Invalid department"
	case len(req.Password) < 8:
		return "Password must be at least 8 characters"
	}
	return ""
}

func validateRegister(req RegisterRequest) string {
	switch {
	case len(strings.TrimSpace(req.Name)) < 2:
		return "Name must be at least 2 characters"
	case !emailPattern.MatchString(req.Email):
		return "Invalid email address"
	case len(req.Password) < 8:
		return "Password must be at least 8 characters"
	}
	return ""
}

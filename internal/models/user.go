package models

import "time"

// Roles. An admin owns a tenant; managers and staff belong to one via AdminID.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Departments for staff records.
const (
	DepartmentManagement = "management"
	DepartmentKitchen    = "kitchen"
	DepartmentService    = "service"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Department   string    `json:"department,omitempty"`
	Status       string    `json:"status"`
	AdminID      string    `json:"adminId,omitempty"`
	LastActive   time.Time `json:"lastActive"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user owns a tenant.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

package handlers

import (
	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/report"
)

type ItemRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CurrentStock float64 `json:"currentStock"`
	MinStock     float64 `json:"minStock"`
	Unit         string  `json:"unit"`
}

type ItemsResult struct {
	Items []models.InventoryItem `json:"items"`
}

type ItemResult struct {
	Item models.InventoryItem `json:"item"`
}

// AdjustmentRequest is the POST /activity body. QuantityValue is a pointer so
// a missing field is distinguishable from zero.
type AdjustmentRequest struct {
	Type          string   `json:"type"`
	Item          string   `json:"item"`
	QuantityValue *float64 `json:"quantityValue"`
	Notes         string   `json:"notes"`
}

type ActivitiesResult struct {
	Activities []models.ActivityLog `json:"activities"`
}

type AdjustmentResult struct {
	Activity models.ActivityLog   `json:"activity"`
	Item     models.InventoryItem `json:"item"`
}

type StaffRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Password   string `json:"password"`
}

type StaffResult struct {
	Staff []models.User `json:"staff"`
}

type StaffCreatedResult struct {
	Staff models.User `json:"staff"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResult struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type MeResult struct {
	User models.User `json:"user"`
}

// DashboardResult is the summary plus its display rendering in the requested
// currency. MonthlyUsage stays in USD so clients can convert themselves.
type DashboardResult struct {
	report.Summary
	Currency            string `json:"currency"`
	MonthlyUsageDisplay string `json:"monthlyUsageDisplay"`
}

type OverviewResult struct {
	Data []report.MonthBucket `json:"data"`
}

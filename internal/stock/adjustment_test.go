package stock

import (
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
)

var actor = models.User{ID: "u1", Name: "Maria"}

func testItem() models.InventoryItem {
	return models.InventoryItem{
		ID:           "item-1",
		Name:         "Olive Oil",
		Category:     models.CategoryOils,
		CurrentStock: 10,
		MinStock:     20,
		Unit:         "l",
		CreatedBy:    "admin-1",
	}
}

func TestNewAdjustment(t *testing.T) {
	tests := []struct {
		name     string
		adjType  string
		quantity float64
		wantErr  error
		wantType string
	}{
		{"added", "added", 5, nil, models.ActivityAdded},
		{"removed", "removed", 5, nil, models.ActivityRemoved},
		{"adjusted", "adjusted", 5, nil, models.ActivityAdjusted},
		{"set alias", "set", 5, nil, models.ActivityAdjusted},
		{"unknown type", "restock", 5, ErrInvalidType, ""},
		{"negative quantity", "added", -1, ErrInvalidQuantity, ""},
		{"zero quantity is fine", "adjusted", 0, nil, models.ActivityAdjusted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj, err := NewAdjustment(tt.adjType, tt.quantity, "")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && adj.Type != tt.wantType {
				t.Errorf("type = %q, want %q", adj.Type, tt.wantType)
			}
		})
	}
}

func TestApplyAdded(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	adj, _ := NewAdjustment("added", 5, "weekly delivery")

	item, entry := Apply(testItem(), adj, actor, now)

	if item.CurrentStock != 15 {
		t.Errorf("stock = %v, want 15", item.CurrentStock)
	}
	if item.PercentRemaining != 75 {
		t.Errorf("percent = %v, want 75", item.PercentRemaining)
	}
	if item.Status != string(StatusGood) {
		t.Errorf("status = %v, want good", item.Status)
	}
	if !item.LastUpdated.Equal(now) {
		t.Errorf("lastUpdated = %v, want %v", item.LastUpdated, now)
	}

	if entry.Quantity != "+5 l" {
		t.Errorf("quantity = %q, want %q", entry.Quantity, "+5 l")
	}
	if entry.Type != models.ActivityAdded {
		t.Errorf("type = %q, want added", entry.Type)
	}
	if entry.OwnerID != "admin-1" {
		t.Errorf("owner = %q, want admin-1", entry.OwnerID)
	}
	if entry.UserName != "Maria" {
		t.Errorf("userName = %q, want Maria", entry.UserName)
	}
	if entry.Notes != "weekly delivery" {
		t.Errorf("notes = %q", entry.Notes)
	}
}

func TestApplyRemovedClampsAtZero(t *testing.T) {
	adj, _ := NewAdjustment("removed", 15, "")

	item, entry := Apply(testItem(), adj, actor, time.Now().UTC())

	if item.CurrentStock != 0 {
		t.Errorf("stock = %v, want 0", item.CurrentStock)
	}
	if item.Status != string(StatusCritical) {
		t.Errorf("status = %v, want critical", item.Status)
	}
	// The log records the requested quantity, not the clamped delta.
	if entry.Quantity != "-15 l" {
		t.Errorf("quantity = %q, want %q", entry.Quantity, "-15 l")
	}
}

func TestApplyAdjustedSetsAbsolute(t *testing.T) {
	adj, _ := NewAdjustment("adjusted", 3, "")

	item, entry := Apply(testItem(), adj, actor, time.Now().UTC())

	if item.CurrentStock != 3 {
		t.Errorf("stock = %v, want 3", item.CurrentStock)
	}
	if item.PercentRemaining != 15 {
		t.Errorf("percent = %v, want 15", item.PercentRemaining)
	}
	if item.Status != string(StatusCritical) {
		t.Errorf("status = %v, want critical", item.Status)
	}
	if entry.Quantity != "3 l" {
		t.Errorf("quantity = %q, want %q", entry.Quantity, "3 l")
	}

	// Setting the same value again is a no-op on the stock level but still
	// produces a log entry.
	again, entry2 := Apply(item, adj, actor, time.Now().UTC())
	if again.CurrentStock != 3 {
		t.Errorf("stock after repeat = %v, want 3", again.CurrentStock)
	}
	if entry2.Quantity != "3 l" {
		t.Errorf("quantity = %q, want %q", entry2.Quantity, "3 l")
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		adjType  string
		quantity float64
		unit     string
		want     string
	}{
		{models.ActivityAdded, 5, "kg", "+5 kg"},
		{models.ActivityRemoved, 15, "kg", "-15 kg"},
		{models.ActivityAdjusted, 3, "l", "3 l"},
		{models.ActivityAdded, 2.5, "kg", "+2.5 kg"},
		{models.ActivityRemoved, 0.25, "l", "-0.25 l"},
	}

	for _, tt := range tests {
		if got := FormatQuantity(tt.adjType, tt.quantity, tt.unit); got != tt.want {
			t.Errorf("FormatQuantity(%q, %v, %q) = %q, want %q", tt.adjType, tt.quantity, tt.unit, got, tt.want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"+5 kg", 5},
		{"-15 kg", 15},
		{"3 l", 3},
		{"+2.5 kg", 2.5},
		{"-0.25 l", 0.25},
		{"garbage", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := ParseQuantity(tt.in); got != tt.want {
			t.Errorf("ParseQuantity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

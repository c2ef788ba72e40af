package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/repo"
	"github.com/rogerio-castellano/restaurant-inventory/internal/report"
	"github.com/rogerio-castellano/restaurant-inventory/internal/scope"
)

var testNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine() (*report.Engine, *repo.InMemoryItemRepository, *repo.InMemoryActivityRepository, *repo.InMemoryUserRepository) {
	activity := repo.NewInMemoryActivityRepository()
	items := repo.NewInMemoryItemRepository(activity)
	users := repo.NewInMemoryUserRepository()

	e := report.NewEngine(items, activity, users)
	e.SetClock(func() time.Time { return testNow })
	return e, items, activity, users
}

func TestUnitCost(t *testing.T) {
	tests := []struct {
		category string
		want     float64
	}{
		{models.CategoryMeat, 25},
		{models.CategoryDairy, 15},
		{models.CategoryOils, 20},
		{models.CategoryBeverages, 12},
		{models.CategoryProduce, 8},
		{models.CategoryDryGoods, 5},
		{"unknown", 10},
	}

	for _, tt := range tests {
		if got := report.UnitCost(tt.category); got != tt.want {
			t.Errorf("UnitCost(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestDashboardSummary(t *testing.T) {
	e, items, activity, users := newTestEngine()
	ctx := context.Background()
	sc := scope.Scope{AdminID: "admin-1"}

	chicken, _ := items.Create(ctx, models.InventoryItem{
		Name: "Chicken Breast", Category: models.CategoryMeat,
		CurrentStock: 2, MinStock: 10, Unit: "kg",
		Status: "critical", CreatedBy: "admin-1",
	})
	_, _ = items.Create(ctx, models.InventoryItem{
		Name: "Milk", Category: models.CategoryDairy,
		CurrentStock: 20, MinStock: 10, Unit: "l",
		Status: "good", CreatedBy: "admin-1",
	})

	// Usage inside the 30-day window: 5.5 kg of meat at 25/unit.
	_, _ = activity.Append(ctx, models.ActivityLog{
		Type: models.ActivityRemoved, ItemID: chicken.ID, Quantity: "-5.5 kg",
		Timestamp: testNow.AddDate(0, 0, -10), OwnerID: "admin-1",
	})
	// Removal referencing a deleted item costs the default 10/unit.
	_, _ = activity.Append(ctx, models.ActivityLog{
		Type: models.ActivityRemoved, ItemID: "gone", Quantity: "-2 l",
		Timestamp: testNow.AddDate(0, 0, -5), OwnerID: "admin-1",
	})
	// Too old to count.
	_, _ = activity.Append(ctx, models.ActivityLog{
		Type: models.ActivityRemoved, ItemID: chicken.ID, Quantity: "-100 kg",
		Timestamp: testNow.AddDate(0, -2, 0), OwnerID: "admin-1",
	})
	// Additions never count as usage.
	_, _ = activity.Append(ctx, models.ActivityLog{
		Type: models.ActivityAdded, ItemID: chicken.ID, Quantity: "+50 kg",
		Timestamp: testNow.AddDate(0, 0, -3), OwnerID: "admin-1",
	})

	_, _ = users.Create(ctx, models.User{
		Name: "Maria", Email: "maria@example.com", Role: models.RoleStaff,
		Status: models.StatusActive, AdminID: "admin-1",
	})
	_, _ = users.Create(ctx, models.User{
		Name: "Jo", Email: "jo@example.com", Role: models.RoleStaff,
		Status: models.StatusInactive, AdminID: "admin-1",
	})

	s, err := e.DashboardSummary(ctx, sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", s.TotalItems)
	}
	if s.LowStockItems != 1 {
		t.Errorf("LowStockItems = %d, want 1", s.LowStockItems)
	}
	want := 5.5*25 + 2*10
	if s.MonthlyUsage != want {
		t.Errorf("MonthlyUsage = %v, want %v", s.MonthlyUsage, want)
	}
	if s.ActiveStaff != 1 {
		t.Errorf("ActiveStaff = %d, want 1", s.ActiveStaff)
	}
}

func TestDashboardSummaryIgnoresOtherTenants(t *testing.T) {
	e, items, activity, _ := newTestEngine()
	ctx := context.Background()

	_, _ = items.Create(ctx, models.InventoryItem{
		Name: "Rice", Category: models.CategoryDryGoods,
		CurrentStock: 1, MinStock: 10, Status: "critical", CreatedBy: "admin-2",
	})
	_, _ = activity.Append(ctx, models.ActivityLog{
		Type: models.ActivityRemoved, ItemID: "x", Quantity: "-5 kg",
		Timestamp: testNow.AddDate(0, 0, -1), OwnerID: "admin-2",
	})

	s, err := e.DashboardSummary(ctx, scope.Scope{AdminID: "admin-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalItems != 0 || s.LowStockItems != 0 || s.MonthlyUsage != 0 {
		t.Errorf("expected empty summary, got %+v", s)
	}
}

func TestMonthlyOverview(t *testing.T) {
	e, items, activity, _ := newTestEngine()
	ctx := context.Background()
	sc := scope.Scope{AdminID: "admin-1"}

	flour, _ := items.Create(ctx, models.InventoryItem{
		Name: "Flour", Category: models.CategoryDryGoods,
		CurrentStock: 50, MinStock: 10, Unit: "kg",
		Status: "good", CreatedBy: "admin-1",
	})

	stamp := func(adjType, quantity string, ts time.Time) {
		_, _ = activity.Append(ctx, models.ActivityLog{
			Type: adjType, ItemID: flour.ID, Quantity: quantity,
			Timestamp: ts, OwnerID: "admin-1",
		})
	}
	stamp(models.ActivityRemoved, "-10 kg", time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC))
	stamp(models.ActivityAdded, "+30 kg", time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC))
	stamp(models.ActivityRemoved, "-5 kg", time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC))
	stamp(models.ActivityAdded, "+20 kg", time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC))

	buckets, err := e.MonthlyOverview(ctx, sc, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}

	wantLabels := []string{"Apr", "May", "Jun"}
	wantUsage := []float64{0, 5, 10}
	// Replaying backward from the current total of 50:
	// June holds the live level, May adds back June's removal, April undoes
	// May's net +25.
	wantStock := []float64{35, 60, 50}

	for i := range buckets {
		if buckets[i].Label != wantLabels[i] {
			t.Errorf("bucket %d label = %q, want %q", i, buckets[i].Label, wantLabels[i])
		}
		if buckets[i].Usage != wantUsage[i] {
			t.Errorf("bucket %d usage = %v, want %v", i, buckets[i].Usage, wantUsage[i])
		}
		if buckets[i].Stock != wantStock[i] {
			t.Errorf("bucket %d stock = %v, want %v", i, buckets[i].Stock, wantStock[i])
		}
	}
}

func TestMonthlyOverviewNeverNegative(t *testing.T) {
	e, items, activity, _ := newTestEngine()
	ctx := context.Background()
	sc := scope.Scope{AdminID: "admin-1"}

	// A large addition this month with nothing on hand before it would
	// replay to a negative level; it must clamp at zero instead.
	item, _ := items.Create(ctx, models.InventoryItem{
		Name: "Beans", Category: models.CategoryDryGoods,
		CurrentStock: 5, MinStock: 1, Unit: "kg",
		Status: "good", CreatedBy: "admin-1",
	})
	_, _ = activity.Append(ctx, models.ActivityLog{
		Type: models.ActivityAdded, ItemID: item.ID, Quantity: "+100 kg",
		Timestamp: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), OwnerID: "admin-1",
	})

	buckets, err := e.MonthlyOverview(ctx, sc, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, b := range buckets {
		if b.Stock < 0 {
			t.Errorf("bucket %d stock = %v, want >= 0", i, b.Stock)
		}
	}
}

func TestMonthlyOverviewDefaultsToSixMonths(t *testing.T) {
	e, _, _, _ := newTestEngine()

	buckets, err := e.MonthlyOverview(context.Background(), scope.Scope{AdminID: "admin-1"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Jan" || buckets[5].Label != "Jun" {
		t.Errorf("labels = %q .. %q, want Jan .. Jun", buckets[0].Label, buckets[5].Label)
	}
}

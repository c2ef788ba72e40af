// Package report derives dashboard statistics and monthly usage/stock trends
// from inventory records and the activity log.
package report

import (
	"context"
	"time"

	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/repo"
	"github.com/rogerio-castellano/restaurant-inventory/internal/scope"
	"github.com/rogerio-castellano/restaurant-inventory/internal/stock"
)

// Estimated cost per unit by item category, in USD. Items whose category is
// missing from the table cost defaultUnitCost.
var unitCosts = map[string]float64{
	models.CategoryMeat:      25,
	models.CategoryDairy:     15,
	models.CategoryOils:      20,
	models.CategoryBeverages: 12,
	models.CategoryProduce:   8,
	models.CategoryDryGoods:  5,
}

const defaultUnitCost = 10

// UnitCost returns the estimated USD cost of one unit in the given category.
func UnitCost(category string) float64 {
	if c, ok := unitCosts[category]; ok {
		return c
	}
	return defaultUnitCost
}

// Summary is the dashboard aggregate for one tenant.
type Summary struct {
	TotalItems    int     `json:"totalItems"`
	LowStockItems int     `json:"lowStockItems"`
	MonthlyUsage  float64 `json:"monthlyUsage"`
	ActiveStaff   int     `json:"activeStaff"`
}

// MonthBucket is one point of the monthly overview trend.
type MonthBucket struct {
	Label string  `json:"name"`
	Usage float64 `json:"usage"`
	Stock float64 `json:"stock"`
}

type Engine struct {
	items    repo.ItemRepository
	activity repo.ActivityRepository
	users    repo.UserRepository
	now      func() time.Time
}

func NewEngine(items repo.ItemRepository, activity repo.ActivityRepository, users repo.UserRepository) *Engine {
	return &Engine{items: items, activity: activity, users: users, now: time.Now}
}

// SetClock overrides the engine's notion of now; tests use it to pin month
// boundaries.
func (e *Engine) SetClock(now func() time.Time) { e.now = now }

// DashboardSummary computes item counts, last-30-days usage cost and active
// staff for the tenant. MonthlyUsage is in USD; callers convert for display.
func (e *Engine) DashboardSummary(ctx context.Context, sc scope.Scope) (Summary, error) {
	items, err := e.items.GetAll(ctx, sc, repo.ItemFilter{})
	if err != nil {
		return Summary{}, err
	}

	s := Summary{TotalItems: len(items)}
	costByItem := make(map[string]float64, len(items))
	for _, item := range items {
		if item.Status == string(stock.StatusWarning) || item.Status == string(stock.StatusCritical) {
			s.LowStockItems++
		}
		costByItem[item.ID] = UnitCost(item.Category)
	}

	oneMonthAgo := e.now().UTC().AddDate(0, -1, 0)
	removals, err := e.activity.List(ctx, sc, repo.ActivityFilter{
		Type:  models.ActivityRemoved,
		Since: &oneMonthAgo,
	})
	if err != nil {
		return Summary{}, err
	}
	for _, entry := range removals {
		cost, ok := costByItem[entry.ItemID]
		if !ok {
			cost = defaultUnitCost
		}
		s.MonthlyUsage += stock.ParseQuantity(entry.Quantity) * cost
	}

	s.ActiveStaff, err = e.users.CountActiveStaff(ctx, sc.AdminID)
	if err != nil {
		return Summary{}, err
	}
	return s, nil
}

// MonthlyOverview returns one bucket per trailing calendar month, current
// month last. Usage sums the magnitudes of removals inside the month. Stock
// is the level at the end of the month, reconstructed by replaying the
// activity log backward from the current in-scope total: additions are
// subtracted and removals added back while walking into the past. Absolute
// "adjusted" entries carry no delta and replay as neutral.
func (e *Engine) MonthlyOverview(ctx context.Context, sc scope.Scope, monthsBack int) ([]MonthBucket, error) {
	if monthsBack <= 0 {
		monthsBack = 6
	}

	now := e.now().UTC()
	type window struct {
		start, end time.Time // [start, end)
	}
	windows := make([]window, monthsBack)
	for i := 0; i < monthsBack; i++ {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, i-(monthsBack-1), 0)
		windows[i] = window{start: start, end: start.AddDate(0, 1, 0)}
	}

	items, err := e.items.GetAll(ctx, sc, repo.ItemFilter{})
	if err != nil {
		return nil, err
	}
	var total float64
	for _, item := range items {
		total += item.CurrentStock
	}

	logs, err := e.activity.List(ctx, sc, repo.ActivityFilter{Since: &windows[0].start})
	if err != nil {
		return nil, err
	}

	buckets := make([]MonthBucket, monthsBack)
	for i, w := range windows {
		buckets[i].Label = w.start.Month().String()[:3]
	}
	for _, entry := range logs {
		if entry.Type != models.ActivityRemoved {
			continue
		}
		for i, w := range windows {
			if !entry.Timestamp.Before(w.start) && entry.Timestamp.Before(w.end) {
				buckets[i].Usage += stock.ParseQuantity(entry.Quantity)
				break
			}
		}
	}

	// Backward replay: logs arrive newest first, so undoing each entry in
	// order yields the stock level at successively earlier points in time.
	running := total
	idx := 0
	for i := monthsBack - 1; i >= 0; i-- {
		for idx < len(logs) && !logs[idx].Timestamp.Before(windows[i].end) {
			switch logs[idx].Type {
			case models.ActivityAdded:
				running -= stock.ParseQuantity(logs[idx].Quantity)
			case models.ActivityRemoved:
				running += stock.ParseQuantity(logs[idx].Quantity)
			}
			idx++
		}
		if running < 0 {
			// Clamped removals lose information; never report negative stock.
			running = 0
		}
		buckets[i].Stock = running
	}

	return buckets, nil
}

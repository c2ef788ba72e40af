package handlers

import (
	"github.com/rogerio-castellano/restaurant-inventory/internal/alert"
	"github.com/rogerio-castellano/restaurant-inventory/internal/monitoring"
	"github.com/rogerio-castellano/restaurant-inventory/internal/report"
	"github.com/rogerio-castellano/restaurant-inventory/internal/repo"

	rl "github.com/rogerio-castellano/restaurant-inventory/internal/http/rate_limiter"
)

// Dependencies are constructed once in main and injected here before the
// router starts serving.
var (
	itemRepo     repo.ItemRepository
	activityRepo repo.ActivityRepository
	userRepo     repo.UserRepository
	reportEngine *report.Engine
	limiter      *rl.Limiter
	metrics      *monitoring.Registry
	notifier     *alert.Notifier
)

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}

func SetActivityRepo(r repo.ActivityRepository) {
	activityRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetReportEngine(e *report.Engine) {
	reportEngine = e
}

func SetRateLimiter(l *rl.Limiter) {
	limiter = l
}

func SetMetrics(m *monitoring.Registry) {
	metrics = m
}

func SetNotifier(n *alert.Notifier) {
	notifier = n
}

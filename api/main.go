package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/restaurant-inventory/internal/alert"
	"github.com/rogerio-castellano/restaurant-inventory/internal/auth"
	"github.com/rogerio-castellano/restaurant-inventory/internal/config"
	"github.com/rogerio-castellano/restaurant-inventory/internal/db"
	ihttp "github.com/rogerio-castellano/restaurant-inventory/internal/http"
	"github.com/rogerio-castellano/restaurant-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/restaurant-inventory/internal/http/rate_limiter"
	"github.com/rogerio-castellano/restaurant-inventory/internal/monitoring"
	"github.com/rogerio-castellano/restaurant-inventory/internal/repo"
	"github.com/rogerio-castellano/restaurant-inventory/internal/report"
)

// @title Restaurant Inventory API
// @version 1.0
// @description REST API for restaurant inventory, stock activity and dashboard reporting.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	auth.SetSecret(cfg.JWTSecret)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	ctx := context.Background()
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer rdb.Close()
	}

	itemRepo := repo.NewPostgresItemRepository(database)
	activityRepo := repo.NewPostgresActivityRepository(database)
	userRepo := repo.NewPostgresUserRepository(database)

	limiter := rl.New(rdb)
	go limiter.StartVisitorCleanupLoop()

	metrics := monitoring.NewRegistry()
	go metrics.StartResetLoop(time.Hour)

	notifier := alert.NewNotifier(cfg.SMTP, rdb, ctx)
	go notifier.StartDailySummary(24 * time.Hour)

	handlers.SetItemRepo(itemRepo)
	handlers.SetActivityRepo(activityRepo)
	handlers.SetUserRepo(userRepo)
	handlers.SetReportEngine(report.NewEngine(itemRepo, activityRepo, userRepo))
	handlers.SetRateLimiter(limiter)
	handlers.SetMetrics(metrics)
	handlers.SetNotifier(notifier)

	r := ihttp.NewRouter(cfg.Origins())
	log.Info().Str("addr", cfg.Addr).Msg("server listening")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

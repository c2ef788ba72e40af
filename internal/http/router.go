// Package http assembles the chi router: middleware chain, public auth
// routes and the authenticated API surface.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/restaurant-inventory/internal/http/handlers"
)

// Per-route budgets, requests per minute. Reads are generous, writes and
// login attempts tight, aggregation endpoints in between.
const (
	readsPerMin      = 100
	writesPerMin     = 20
	deletesPerMin    = 10
	loginsPerMin     = 10
	dashboardPerMin  = 50
	overviewPerMin   = 20
	monitoringPerMin = 10
)

func NewRouter(corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(handlers.Monitor)

	r.Get("/healthz", handlers.HealthzHandler)
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.With(handlers.RateLimit(loginsPerMin, time.Minute)).Post("/login", handlers.LoginHandler)
		r.With(handlers.RateLimit(writesPerMin, time.Minute)).Post("/register", handlers.RegisterHandler)
		r.With(handlers.RateLimit(readsPerMin, time.Minute)).Post("/logout", handlers.LogoutHandler)

		r.Group(func(r chi.Router) {
			r.Use(handlers.AuthMiddleware)
			r.With(handlers.RateLimit(readsPerMin, time.Minute)).Get("/me", handlers.MeHandler)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware)

		r.Route("/inventory", func(r chi.Router) {
			r.With(handlers.RateLimit(readsPerMin, time.Minute)).Get("/", handlers.GetInventoryHandler)
			r.With(handlers.RateLimit(writesPerMin, time.Minute)).Post("/", handlers.CreateItemHandler)
			r.With(handlers.RateLimit(readsPerMin, time.Minute)).Get("/{id}", handlers.GetItemByIDHandler)
			r.With(handlers.RateLimit(writesPerMin, time.Minute)).Put("/{id}", handlers.UpdateItemHandler)
			r.With(handlers.RateLimit(deletesPerMin, time.Minute)).Delete("/{id}", handlers.DeleteItemHandler)
		})

		r.Route("/activity", func(r chi.Router) {
			r.With(handlers.RateLimit(readsPerMin, time.Minute)).Get("/", handlers.GetActivityHandler)
			r.With(handlers.RateLimit(writesPerMin, time.Minute)).Post("/", handlers.CreateAdjustmentHandler)
			r.With(handlers.RateLimit(readsPerMin, time.Minute)).Get("/export", handlers.ExportActivityHandler)
		})

		r.With(handlers.RateLimit(dashboardPerMin, time.Minute)).Get("/dashboard", handlers.GetDashboardHandler)
		r.With(handlers.RateLimit(overviewPerMin, time.Minute)).Get("/analytics/overview", handlers.GetOverviewHandler)

		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireAdmin)
			r.With(handlers.RateLimit(readsPerMin, time.Minute)).Get("/staff", handlers.GetStaffHandler)
			r.With(handlers.RateLimit(writesPerMin, time.Minute)).Post("/staff", handlers.CreateStaffHandler)
			r.With(handlers.RateLimit(monitoringPerMin, time.Minute)).Get("/monitoring", handlers.GetMonitoringHandler)
		})
	})

	return r
}

// requestLogger attaches the global zerolog logger to each request and logs
// one line per response.
func requestLogger(next http.Handler) http.Handler {
	h := hlog.NewHandler(log.Logger)
	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})
	return h(access(next))
}

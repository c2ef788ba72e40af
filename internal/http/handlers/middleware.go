package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/restaurant-inventory/internal/auth"
	"github.com/rogerio-castellano/restaurant-inventory/internal/models"
	"github.com/rogerio-castellano/restaurant-inventory/internal/scope"
)

type contextKey string

const actorKey = contextKey("actor")

// AuthMiddleware authenticates the request from the session cookie or a
// Bearer header, loads the full actor record (claims alone don't carry the
// tenant back-reference), and stores it on the context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := ""
		if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
			tokenStr = strings.TrimPrefix(authz, "Bearer ")
		} else if c, err := r.Cookie(auth.CookieName); err == nil {
			tokenStr = c.Value
		}
		if tokenStr == "" {
			errorJSON(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			errorJSON(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		id, _ := claims["sub"].(string)

		actor, err := userRepo.GetByID(r.Context(), id)
		if err != nil || actor.Status == models.StatusInactive {
			errorJSON(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		_ = userRepo.TouchLastActive(r.Context(), actor.ID)

		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates staff management and monitoring to tenant owners.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r)
		if !ok {
			errorJSON(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !actor.IsAdmin() {
			errorJSON(w, http.StatusForbidden, "Unauthorized. Admin access required.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ActorFromContext returns the authenticated user stored by AuthMiddleware.
func ActorFromContext(r *http.Request) (models.User, bool) {
	actor, ok := r.Context().Value(actorKey).(models.User)
	return actor, ok
}

// scopeFor resolves the actor and its tenant scope in one step.
func scopeFor(r *http.Request) (models.User, scope.Scope, error) {
	actor, ok := ActorFromContext(r)
	if !ok {
		return models.User{}, scope.Scope{}, auth.ErrInvalidToken
	}
	sc, err := scope.For(actor)
	return actor, sc, err
}

// RateLimit budgets requests per client and route on a fixed window. The
// limiter is advisory metadata plus a hard 429 once the budget is spent.
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			res := limiter.Allow(r.Context(), clientIP(r), r.URL.Path, limit, window)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset, 10))

			if !res.Allowed {
				retryAfter := res.Reset - time.Now().Unix()
				if retryAfter < 0 {
					retryAfter = 0
				}
				w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				errorJSON(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Monitor records per-endpoint counts and latency into the metrics registry.
func Monitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		metrics.Record(r.URL.Path, rec.status, time.Since(start))
	})
}

// Package rate_limiter enforces per-client request budgets. The primary
// implementation is a Redis fixed-window counter keyed by (client, route,
// window); when no Redis client is configured it degrades to an in-process
// token-bucket limiter per visitor.
package rate_limiter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Result carries the advisory metadata surfaced on X-RateLimit-* headers.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     int64 // unix seconds when the window rolls over
}

type Limiter struct {
	rdb *redis.Client

	mu       sync.Mutex
	visitors map[string]*clientLimiter
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New builds a limiter. rdb may be nil; the in-memory fallback then applies.
func New(rdb *redis.Client) *Limiter {
	return &Limiter{
		rdb:      rdb,
		visitors: make(map[string]*clientLimiter),
	}
}

// Allow consumes one request from the (identifier, route) budget of limit
// requests per window.
func (l *Limiter) Allow(ctx context.Context, identifier, route string, limit int, window time.Duration) Result {
	if l.rdb != nil {
		return l.allowRedis(ctx, identifier, route, limit, window)
	}
	return l.allowLocal(identifier, route, limit, window)
}

func (l *Limiter) allowRedis(ctx context.Context, identifier, route string, limit int, window time.Duration) Result {
	now := time.Now().Unix()
	windowSecs := int64(window.Seconds())
	windowStart := now - now%windowSecs
	key := fmt.Sprintf("rate-limit:%s:%s:%d", identifier, route, windowStart)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		// Redis trouble must not take requests down; fail open.
		return Result{Allowed: true, Limit: limit, Remaining: limit, Reset: now + windowSecs}
	}
	if count == 1 {
		l.rdb.Expire(ctx, key, window)
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
		Reset:     windowStart + windowSecs,
	}
}

func (l *Limiter) allowLocal(identifier, route string, limit int, window time.Duration) Result {
	l.mu.Lock()
	key := identifier + ":" + route
	v, exists := l.visitors[key]
	if !exists {
		perSecond := rate.Limit(float64(limit) / window.Seconds())
		v = &clientLimiter{limiter: rate.NewLimiter(perSecond, limit)}
		l.visitors[key] = v
	}
	v.lastSeen = time.Now()
	l.mu.Unlock()

	allowed := v.limiter.Allow()
	remaining := int(v.limiter.Tokens())
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		Reset:     time.Now().Add(window).Unix(),
	}
}

// StartVisitorCleanupLoop evicts idle in-memory visitors. Run in a goroutine
// from main.
func (l *Limiter) StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		l.mu.Lock()
		for key, v := range l.visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(l.visitors, key)
			}
		}
		l.mu.Unlock()
	}
}

// CleanupAllVisitors resets the in-memory state; tests use it.
func (l *Limiter) CleanupAllVisitors() {
	l.mu.Lock()
	l.visitors = make(map[string]*clientLimiter)
	l.mu.Unlock()
}

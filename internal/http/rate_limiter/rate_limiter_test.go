package rate_limiter

import (
	"context"
	"testing"
	"time"
)

func TestLocalLimiterEnforcesBudget(t *testing.T) {
	l := New(nil)
	t.Cleanup(l.CleanupAllVisitors)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res := l.Allow(ctx, "10.0.0.1", "/inventory", 2, time.Minute)
		if !res.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if res.Limit != 2 {
			t.Errorf("limit = %d, want 2", res.Limit)
		}
	}

	res := l.Allow(ctx, "10.0.0.1", "/inventory", 2, time.Minute)
	if res.Allowed {
		t.Error("third request inside the window should be rejected")
	}
	if res.Reset <= time.Now().Unix()-61 {
		t.Errorf("reset = %d looks stale", res.Reset)
	}
}

func TestLocalLimiterIsolatesClientsAndRoutes(t *testing.T) {
	l := New(nil)
	t.Cleanup(l.CleanupAllVisitors)
	ctx := context.Background()

	if res := l.Allow(ctx, "10.0.0.1", "/inventory", 1, time.Minute); !res.Allowed {
		t.Fatal("first request should be allowed")
	}
	if res := l.Allow(ctx, "10.0.0.1", "/inventory", 1, time.Minute); res.Allowed {
		t.Error("budget for the same client and route should be spent")
	}
	if res := l.Allow(ctx, "10.0.0.2", "/inventory", 1, time.Minute); !res.Allowed {
		t.Error("another client should have its own budget")
	}
	if res := l.Allow(ctx, "10.0.0.1", "/dashboard", 1, time.Minute); !res.Allowed {
		t.Error("another route should have its own budget")
	}
}

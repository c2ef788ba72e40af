// Package monitoring keeps process-scoped request metrics. The registry is
// constructed once at startup and passed by handle; nothing in here is a
// package-level global.
package monitoring

import (
	"sync"
	"time"
)

// Snapshot is the JSON shape served by GET /monitoring.
type Snapshot struct {
	RequestCount      int64          `json:"requestCount"`
	ErrorCount        int64          `json:"errorCount"`
	ResponseTimeAvgMs float64        `json:"responseTimeAvg"`
	StatusCodes       map[int]int64  `json:"statusCodes"`
	Endpoints         map[string]int64 `json:"endpoints"`
	Timestamp         time.Time      `json:"timestamp"`
}

type Registry struct {
	mu            sync.Mutex
	requestCount  int64
	errorCount    int64
	totalDuration time.Duration
	statusCodes   map[int]int64
	endpoints     map[string]int64
}

func NewRegistry() *Registry {
	return &Registry{
		statusCodes: make(map[int]int64),
		endpoints:   make(map[string]int64),
	}
}

// Record accounts one finished request. Status codes >= 400 count as errors.
func (r *Registry) Record(endpoint string, status int, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requestCount++
	r.totalDuration += duration
	r.statusCodes[status]++
	r.endpoints[endpoint]++
	if status >= 400 {
		r.errorCount++
	}
}

func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Snapshot{
		RequestCount: r.requestCount,
		ErrorCount:   r.errorCount,
		StatusCodes:  make(map[int]int64, len(r.statusCodes)),
		Endpoints:    make(map[string]int64, len(r.endpoints)),
		Timestamp:    time.Now().UTC(),
	}
	if r.requestCount > 0 {
		s.ResponseTimeAvgMs = float64(r.totalDuration.Milliseconds()) / float64(r.requestCount)
	}
	for k, v := range r.statusCodes {
		s.StatusCodes[k] = v
	}
	for k, v := range r.endpoints {
		s.Endpoints[k] = v
	}
	return s
}

// Reset clears all counters; the hourly reset loop uses it.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requestCount = 0
	r.errorCount = 0
	r.totalDuration = 0
	r.statusCodes = make(map[int]int64)
	r.endpoints = make(map[string]int64)
}

// StartResetLoop clears the registry on the given interval. Run in a
// goroutine from main.
func (r *Registry) StartResetLoop(interval time.Duration) {
	for {
		time.Sleep(interval)
		r.Reset()
	}
}

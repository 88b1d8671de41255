// Package ratelimit implements a fixed-window request limiter keyed by
// client identifier. The counter resets at fixed boundaries rather than
// sliding continuously, so a burst straddling a boundary can see up to
// twice the limit; that tradeoff is accepted here.
package ratelimit

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// window tracks request volume for one client within the current window
type window struct {
	count int
	start time.Time
}

// Limiter counts requests per client in fixed time windows. Like the
// cache it follows the "mapping + time-bounded validity" shape: a map
// guarded by a mutex, with an injected clock for testability.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]window
	limit   int
	size    time.Duration
	clock   clock.Clock
}

// NewLimiter creates a limiter allowing limit requests per client per window
func NewLimiter(limit int, size time.Duration, clk clock.Clock) *Limiter {
	return &Limiter{
		clients: make(map[string]window),
		limit:   limit,
		size:    size,
		clock:   clk,
	}
}

// Allow records a request for client and reports whether it fits in the
// live window. A window older than the configured size is reset before
// counting.
func (l *Limiter) Allow(client string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.clients[client]
	if !ok || now.Sub(w.start) >= l.size {
		l.clients[client] = window{count: 1, start: now}
		return true
	}

	if w.count >= l.limit {
		return false
	}

	w.count++
	l.clients[client] = w
	return true
}

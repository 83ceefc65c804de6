// Package ratelimit implements fixed-window request counting keyed by client
// IP. Each named limiter owns its window and cap; the counter storage is
// pluggable so multi-instance deployments can share counts through Redis
// while single-instance setups keep them in memory.
package ratelimit

import (
	"context"
	"time"
)

// Config describes one named limiter. Message is returned verbatim in the
// 429 envelope so each endpoint can explain its own policy.
type Config struct {
	Name        string
	Window      time.Duration
	MaxRequests int64
	Message     string
	// ExemptAdmin skips counting for requests whose session carries the
	// admin role. Only the general limiter sets this.
	ExemptAdmin bool
}

// Store counts requests per key in fixed windows. Incr bumps the counter for
// the current window, starting a fresh window when none is active, and
// returns the count including this request. Implementations must be safe for
// concurrent use; increments must not undercount under burst load.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

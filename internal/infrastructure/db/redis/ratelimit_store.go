package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitStore backs the rate limiter with shared Redis counters so
// multiple API instances enforce one budget per IP.
// Key format: ratelimit:<limiter>:<ip>
type RateLimitStore struct {
	client *redis.Client
}

// NewRateLimitStore wraps an existing Redis client.
func NewRateLimitStore(client *redis.Client) *RateLimitStore {
	return &RateLimitStore{client: client}
}

// Incr bumps the window counter. The TTL is attached when the counter is
// created, so the window resets exactly window after its first request.
func (s *RateLimitStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := "ratelimit:" + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("ratelimit incr: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return count, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return count, nil
}

package ratelimit

import "context"

// RateLimiter decides whether one more request for key fits the current budget.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

package ratelimit

import "context"

// Config bounds how often a single requester may hit the intake endpoints.
type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, config Config) (bool, error)
	Reset(ctx context.Context, key string) error
}

package ratelimit

import "time"

// RateLimiter limits how often a key may perform an action inside a
// rolling window. Used to throttle credential guessing on the login route.
type RateLimiter interface {
	Allow(key string, limit int, window time.Duration) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

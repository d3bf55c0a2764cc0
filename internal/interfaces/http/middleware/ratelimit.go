package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kitlog-inc/kitlog/internal/infrastructure/ratelimit"
	"github.com/kitlog-inc/kitlog/internal/shared/utils"
)

// RateLimiter throttles requests per client IP using a sliding window.
// All instances share the same counters through Redis, so the limit holds
// in multi-instance deployments.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a new rate limiting middleware.
// limit is the maximum number of requests allowed per window.
func NewRateLimiter(limiter ratelimit.RateLimiter, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		limit:   limit,
		window:  window,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := rl.limiter.Allow("ip:"+c.ClientIP(), rl.limit, rl.window)
		if err != nil {
			// If Redis is unavailable, allow the request to avoid blocking all traffic
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

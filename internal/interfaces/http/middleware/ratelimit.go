package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/subkeeper/internal/infrastructure/ratelimit"
	"github.com/orris-inc/subkeeper/internal/shared/errors"
	"github.com/orris-inc/subkeeper/internal/shared/logger"
	"github.com/orris-inc/subkeeper/internal/shared/utils"
)

// RateLimitRecorder counts rejected requests.
type RateLimitRecorder interface {
	RequestRateLimited()
}

// RateLimit enforces the limiter per client IP. Limiter failures let the request
// through so a Redis outage does not take the API down with it.
func RateLimit(limiter ratelimit.RateLimiter, recorder RateLimitRecorder, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), "ip:"+clientIP)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err, "client_ip", clientIP)
			c.Next()
			return
		}

		if !allowed {
			if recorder != nil {
				recorder.RequestRateLimited()
			}
			log.Warnw("rate limit exceeded", "client_ip", clientIP, "path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/infrastructure/ratelimit"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

// RateLimit enforces per-IP request limits using the shared limiter. A
// limiter error fails open so a Redis outage never blocks traffic.
func RateLimit(limiter ratelimit.RateLimiter, config ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s", c.ClientIP())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

package ratelimit

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/number-o-meter/internal/resilience"
)

// HandleRateLimitStatus reports the limiter backend and the caller's budget
// without consuming from it
func (rl *RateLimiter) HandleRateLimitStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"ip": c.ClientIP(),
			"limits": gin.H{
				"ip_per_minute": gin.H{
					"limit":  rl.config.IPLimit,
					"period": "1 minute",
				},
			},
			"backend":   rl.backend(),
			"timestamp": time.Now().Format(time.RFC3339),
		}
		if rl.redisLimiter != nil {
			body["redis_breaker"] = rl.breaker.Stats()
		}
		c.JSON(http.StatusOK, body)
	}
}

// backend names the store the next request is checked against
func (rl *RateLimiter) backend() string {
	if rl.redisLimiter != nil && rl.breaker.State() != resilience.StateOpen {
		return "redis"
	}
	return "memory"
}

package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/ratelimit"
	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// RateLimitMiddleware throttles intake requests per client IP. The backend
// being unreachable fails open so a redis outage never blocks intake.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.Config
	enabled bool
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, cfg sharedConfig.RateLimitConfig) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		config: ratelimit.Config{
			RequestsPerMinute: cfg.RequestsPerMinute,
			RequestsPerHour:   cfg.RequestsPerHour,
		},
		enabled: cfg.Enabled,
		logger:  logger.NewLogger(),
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		key := fmt.Sprintf("intake:%s", c.ClientIP())
		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.config)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
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

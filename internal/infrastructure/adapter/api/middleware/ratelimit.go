package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/integration"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/dto"
)

// RateLimit gates requests per caller identity, falling back to the client
// IP for anonymous traffic. Limiter backend failures fail open: the request
// proceeds with a warning.
func RateLimit(limiter integration.RateLimiter, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := UserID(c)
		if key == "" {
			key = c.ClientIP()
		}

		allowed, err := limiter.Allow(c.Request.Context(), "http:"+key)
		if err != nil {
			logger.Warn("Rate limiter unavailable, allowing request", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrRateLimited),
				Message: "Rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}

package ratelimit

import (
	httpHandler "github.com/cachefront/backend/internal/http"
	"github.com/cachefront/backend/internal/logger"
	"github.com/gin-gonic/gin"
)

// Middleware intercepts every inbound request and rejects it with HTTP 429
// when the client's fixed window is exhausted, otherwise forwards it down
// the handler chain.
func Middleware(limiter *Limiter, responseHandler httpHandler.ResponseHandler, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !limiter.Allow(clientIP) {
			log.LogWarn("Rate limit exceeded", map[string]interface{}{
				"client_ip": clientIP,
				"path":      c.Request.URL.Path,
			})
			responseHandler.TooManyRequestsResponse(c, "Rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}

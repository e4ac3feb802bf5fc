package health

import (
	"context"
	"net/http"
	"time"

	"codeberg.org/codecopilot/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	serviceName = "code-copilot"
	version     = "1.0.0"
)

// plain-text banner served at /
func RootHandler(c *gin.Context) {
	c.String(http.StatusOK, "Code Copilot API is running")
}

// returns the server health status
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: serviceName,
		Version: version,
	})
}

// reports ready only when the database answers a ping
func ReadyHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.FromContext(c.Request.Context()).Warn("readiness check failed", "error", err)

			c.JSON(http.StatusServiceUnavailable, Response{
				Status:  "unavailable",
				Service: serviceName,
				Version: version,
			})

			return
		}

		c.JSON(http.StatusOK, Response{
			Status:  "ready",
			Service: serviceName,
			Version: version,
		})
	}
}

package main

import (
	"time"

	"codeberg.org/codecopilot/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// tags each request with an id and a request-scoped logger, then logs the outcome
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Header(requestIDHeader, requestID)

		reqLogger := logger.With("request_id", requestID)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), reqLogger))

		start := time.Now()
		c.Next()

		reqLogger.Info("request completed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

package logger

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"payswitch/pkg/correlation"
)

// CorrelationMiddleware extracts X-Correlation-ID from request header or generates a new one.
// It stores the ID in the request context and adds it to the response header.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		corrID := c.GetHeader(correlation.HeaderName)
		if corrID == "" {
			corrID = correlation.NewID()
		}

		ctx := correlation.WithID(c.Request.Context(), corrID)
		c.Request = c.Request.WithContext(ctx)

		c.Header(correlation.HeaderName, corrID)

		c.Next()
	}
}

// RequestLogger logs one line per request through the global slog logger.
// The correlation handler injects correlation_id from the request context.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		slog.InfoContext(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

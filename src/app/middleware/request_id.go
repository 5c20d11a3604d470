// Package middleware contains HTTP middleware for the Gin router.
package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jokeshare/src/infra/logger"
)

const (
	// RequestIDHeader carries the request ID in and out.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the request ID.
	RequestIDKey = "request_id"
)

// RequestID tags every request with an ID, reusing an incoming X-Request-ID,
// and attaches a logger carrying that ID to the request context.
func RequestID(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		ctx := logger.NewContext(c.Request.Context(), logger.WithRequestID(log, id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID returns the request ID, or "" outside RequestID.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// GetLogger returns the request-scoped logger, or fallback when RequestID did not run.
func GetLogger(c *gin.Context, fallback *slog.Logger) *slog.Logger {
	if c.Request == nil {
		return fallback
	}
	return logger.FromContext(c.Request.Context(), fallback)
}

package middleware

import (
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"jokeshare/src/app/http/response"
)

// Recovery turns a panic into the generic apology page and an error log entry
// with the stack. Register it first so it wraps every other middleware.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		GetLogger(c, log).Error("panic recovered",
			"error", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"stack", string(debug.Stack()),
		)
		response.InternalError(c, GetRequestID(c))
		c.Abort()
	})
}

// Package response renders HTTP responses: HTML pages for the site and JSON
// for the operational endpoints.
package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeshare/src/core/domain"
)

// ErrorTemplate is the template used for every error page.
const ErrorTemplate = "error.html"

// MsgWhoopsies is shown for any fault that has no route-specific message.
const MsgWhoopsies = "I did a whoopsies."

// OK sends a 200 JSON response.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Page renders the named template with data.
func Page(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, data)
}

// ErrorPage renders the error page with message.
func ErrorPage(c *gin.Context, status int, message, requestID string) {
	c.HTML(status, ErrorTemplate, gin.H{
		"Status":    status,
		"Message":   message,
		"RequestID": requestID,
	})
}

// InternalError renders the generic apology page. Details of the fault
// never reach the client.
func InternalError(c *gin.Context, requestID string) {
	ErrorPage(c, http.StatusInternalServerError, MsgWhoopsies, requestID)
}

// Boundary maps domain errors to the user-facing messages of one route.
// An empty message falls back to the apology text for that status.
type Boundary struct {
	BadRequest   string
	Unauthorized string
	NotFound     string
}

// Render writes the error page matching err and aborts the chain.
// Faults that are not domain errors are logged and rendered as 500.
func (b Boundary) Render(c *gin.Context, log *slog.Logger, err error, requestID string) {
	defer c.Abort()

	switch {
	case domain.IsValidationError(err):
		ErrorPage(c, http.StatusBadRequest, or(b.BadRequest), requestID)
	case domain.IsUnauthorized(err):
		ErrorPage(c, http.StatusUnauthorized, or(b.Unauthorized), requestID)
	case domain.IsNotFound(err):
		ErrorPage(c, http.StatusNotFound, or(b.NotFound), requestID)
	default:
		log.Error("request failed",
			"request_id", requestID,
			"path", c.Request.URL.Path,
			"error", err,
		)
		InternalError(c, requestID)
	}
}

func or(msg string) string {
	if msg == "" {
		return MsgWhoopsies
	}
	return msg
}

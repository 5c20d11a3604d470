// Package handler holds the gin handlers of the site. Each one parses the
// request, calls a use case and renders a page or redirects.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeshare/src/app/http/response"
	"jokeshare/src/core/usecase"
)

// HealthHandler serves the liveness and dependency health endpoints.
type HealthHandler struct {
	health *usecase.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(health *usecase.HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

// Health answers as long as the process serves requests.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// DetailedHealth pings the stores and answers 503 when any is down.
// GET /health/detailed
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	report := h.health.Check(c.Request.Context())
	if report.Status == "ok" {
		response.OK(c, report)
		return
	}
	c.JSON(http.StatusServiceUnavailable, report)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeshare/src/app/http/response"
)

// PagesHandler serves static pages.
type PagesHandler struct{}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Home renders the landing page.
// GET /
func (h *PagesHandler) Home(c *gin.Context) {
	response.Page(c, http.StatusOK, "index.html", view(c, "", nil))
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"datawarden/web"
)

// WebHandler serves the embedded single-page UI.
type WebHandler struct{}

// NewWebHandler creates a new WebHandler.
func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

// Index handles GET /
func (h *WebHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

package site

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler renders the server-side pages. The header navigation swaps
// between its authenticated and anonymous variants on a login flag,
// nothing else.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "header.tmpl", gin.H{
		"IsLoggedIn": h.isLoggedIn(c),
	})
}

func (h *Handler) isLoggedIn(c *gin.Context) bool {
	if c.Query("logged_in") == "true" {
		return true
	}
	if session, err := c.Cookie("session"); err == nil && session != "" {
		return true
	}
	return false
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Index)
}

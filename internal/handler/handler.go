package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/careconnect/careconnect-api/internal/service/chat"
)

// Handler serves operational endpoints.
type Handler struct {
	db        *sqlx.DB
	retriever chat.Retriever
}

func NewHandler(db *sqlx.DB, retriever chat.Retriever) *Handler {
	return &Handler{db: db, retriever: retriever}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadinessCheck reports whether the service can take traffic: the
// database must answer and the retrieval index must be built.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	checks := gin.H{
		"database":  "ok",
		"retrieval": "ok",
	}
	status := http.StatusOK

	if err := h.db.PingContext(c.Request.Context()); err != nil {
		checks["database"] = "unavailable"
		status = http.StatusServiceUnavailable
	}
	if !h.retriever.Ready() {
		checks["retrieval"] = "loading"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, checks)
}

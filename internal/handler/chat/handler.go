package chat

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/careconnect-api/internal/model"
	"github.com/careconnect/careconnect-api/internal/service/chat"
	apperrors "github.com/careconnect/careconnect-api/pkg/errors"
	"github.com/careconnect/careconnect-api/pkg/logger"
)

type Handler struct {
	service    chat.ChatService
	logger     *logger.Logger
	production bool
}

func NewHandler(service chat.ChatService, l *logger.Logger, production bool) *Handler {
	return &Handler{service: service, logger: l, production: production}
}

func (h *Handler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid message about the project."})
		return
	}

	resp, err := h.service.Answer(c.Request.Context(), req.Message)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Code != apperrors.ErrInternal {
			c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
			return
		}

		h.logger.Error(err, "chat request failed")
		body := gin.H{"error": "Error processing your question"}
		if !h.production {
			body["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)
}

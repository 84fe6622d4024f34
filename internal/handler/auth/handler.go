package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/careconnect-api/internal/model"
	"github.com/careconnect/careconnect-api/internal/service/auth"
	apperrors "github.com/careconnect/careconnect-api/pkg/errors"
	"github.com/careconnect/careconnect-api/pkg/logger"
)

type Handler struct {
	service auth.AuthService
	logger  *logger.Logger
}

func NewHandler(service auth.AuthService, l *logger.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.service.Signup(c.Request.Context(), &req); err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
			return
		}
		h.logger.Error(err, "signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Code == apperrors.ErrUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		h.logger.Error(err, "login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{Success: true, UserID: userID})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
}

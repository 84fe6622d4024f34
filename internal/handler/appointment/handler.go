package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/careconnect-api/internal/model"
	"github.com/careconnect/careconnect-api/internal/service/appointment"
	"github.com/careconnect/careconnect-api/pkg/httputil"
	"github.com/careconnect/careconnect-api/pkg/logger"
)

type Handler struct {
	service appointment.AppointmentService
	logger  *logger.Logger
}

func NewHandler(service appointment.AppointmentService, l *logger.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

func (h *Handler) ListForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error(err, "list appointments failed", "user_id", userID)
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	if err := h.service.CancelAppointment(c.Request.Context(), id); err != nil {
		h.logger.Error(err, "delete appointment failed", "appointment_id", id)
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

func (h *Handler) Book(c *gin.Context) {
	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	id, err := h.service.BookAppointment(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error(err, "book appointment failed")
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Appointment booked successfully",
		"appointmentId": id,
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/appointments/user/:userId", h.ListForUser)
	r.DELETE("/appointments/:id", h.Delete)
	r.POST("/book-appointment", h.Book)
}

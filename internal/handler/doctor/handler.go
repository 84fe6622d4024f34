package doctor

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/careconnect-api/internal/model"
	"github.com/careconnect/careconnect-api/internal/service/doctor"
	apperrors "github.com/careconnect/careconnect-api/pkg/errors"
	"github.com/careconnect/careconnect-api/pkg/httputil"
	"github.com/careconnect/careconnect-api/pkg/logger"
)

type Handler struct {
	service doctor.DoctorService
	logger  *logger.Logger
}

func NewHandler(service doctor.DoctorService, l *logger.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

func (h *Handler) ListDoctors(c *gin.Context) {
	filters := &model.DoctorFilters{}
	// Invalid pagination values fall back to defaults.
	_ = c.ShouldBindQuery(filters)

	doctors, err := h.service.ListDoctors(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error(err, "list doctors failed")
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id matches no doctor.
		httputil.RespondWithError(c, apperrors.NotFound("Doctor", err))
		return
	}

	detail, err := h.service.GetDoctor(c.Request.Context(), id)
	if err != nil {
		if _, ok := err.(*apperrors.AppError); !ok {
			h.logger.Error(err, "get doctor failed", "doctor_id", id)
		}
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
	}
}

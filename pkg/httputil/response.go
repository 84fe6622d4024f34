package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/careconnect-api/pkg/errors"
)

// Error represents an API error body.
type Error struct {
	Error string `json:"error"`
}

// RespondWithError maps an application error to an HTTP response.
// Internal errors are reported with a generic message only; the
// underlying cause is expected to be logged by the caller.
func RespondWithError(c *gin.Context, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		c.JSON(appErr.HTTPStatus(), Error{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, Error{Error: "internal server error"})
}

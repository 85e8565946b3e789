package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-crm/internal/api/shared/errors"
	"github.com/feral-file/ff-crm/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errors.NewValidationError(message))
}

// respondError maps a service error to its status and body.
// Server-side failures are logged with the full error.
func respondError(c *gin.Context, err error, fields ...zap.Field) {
	status, apiErr := errors.FromDomain(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.Request.URL.Path))...)
	}
	c.JSON(status, apiErr)
}

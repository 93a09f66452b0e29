package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/sureshkalyan1000/CableOpreator/internal/api/shared/errors"
	"github.com/sureshkalyan1000/CableOpreator/internal/logger"
)

// errorResponse is the envelope every error payload uses
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// statusForCode maps API error codes onto HTTP status codes
func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest,
		apierrors.ErrCodeMissingField,
		apierrors.ErrCodeInvalidDate,
		apierrors.ErrCodeInvalidAmount,
		apierrors.ErrCodeDuplicateKey:
		return http.StatusBadRequest
	case apierrors.ErrCodeOwnerNotFound,
		apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeDuplicatePeriod:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders an executor error. Server-class failures are logged;
// client-class failures are the caller's to fix and only travel back out.
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error: apierrors.NewInternalError("Internal server error"),
		})
		return
	}

	status := statusForCode(apiErr.Code)
	if status >= http.StatusInternalServerError {
		logger.Error(err, zap.String("path", c.Request.URL.Path))
	}
	c.JSON(status, errorResponse{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Error: apierrors.NewBadRequestError(message, details...),
	})
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, errorResponse{
		Error: apierrors.NewNotFoundError(message),
	})
}

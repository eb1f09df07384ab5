package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/wealth-journey/internal/api/models"
	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/rpgo/wealth-journey/internal/storage"
)

// Error codes returned in the error envelope.
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidParameters = "INVALID_PARAMETERS"
	CodeUnknownAssetMix   = "UNKNOWN_ASSET_MIX"
	CodeDataUnavailable   = "DATA_UNAVAILABLE"
	CodeNotFound          = "NOT_FOUND"
	CodeHistoryDisabled   = "HISTORY_DISABLED"
	CodeCancelled         = "CANCELLED"
	CodeInternal          = "INTERNAL_ERROR"
)

// ErrorHandler middleware handles panics and errors
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(string); ok {
			Abort(c, http.StatusInternalServerError, CodeInternal, err)
		} else {
			Abort(c, http.StatusInternalServerError, CodeInternal, "An unexpected error occurred")
		}
	})
}

// Classify maps an error onto an HTTP status and error code.
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownAssetMix):
		return http.StatusBadRequest, CodeUnknownAssetMix
	case errors.Is(err, domain.ErrInvalidParameters):
		return http.StatusBadRequest, CodeInvalidParameters
	case errors.Is(err, domain.ErrDataUnavailable):
		return http.StatusServiceUnavailable, CodeDataUnavailable
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, CodeCancelled
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// RespondError writes the error envelope for err and aborts the chain.
func RespondError(c *gin.Context, err error) {
	status, code := Classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "An unexpected error occurred"
	}
	_ = c.Error(err)
	Abort(c, status, code, message)
}

// Abort writes an error envelope with an explicit status and code.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

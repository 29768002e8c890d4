package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DavidIQ/onlytimer/internal/timing"
)

type APIError struct {
	Code    int
	Message string
}

type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

// FromTimingError maps recorder error kinds onto HTTP statuses:
// sequencing violations are the caller's fault, storage faults are
// retryable upstream failures.
func FromTimingError(err error) *APIError {
	switch {
	case timing.IsKind(err, timing.KindSequence):
		return &APIError{Code: http.StatusConflict, Message: err.Error()}
	case timing.IsKind(err, timing.KindStorage):
		return &APIError{Code: http.StatusBadGateway, Message: err.Error()}
	default:
		return &APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	}
}

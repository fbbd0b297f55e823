package handler

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
	"github.com/zprintln/AdMaxxer-Project/pkg/middleware"
)

// statusForError maps an error kind to its HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrConfiguration), errors.Is(err, models.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, models.ErrConnectivity):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrMalformedResponse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) handleServiceError(c *gin.Context, err error, fallbackMessage string) {
	status := statusForError(err)
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", middleware.RequestID(c)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", fields...)
	} else {
		h.logger.Warn("Request failed", fields...)
	}

	message := err.Error()
	if message == "" {
		message = fallbackMessage
	}
	resp := models.ErrorResponse{Error: message}
	if h.development {
		resp.Details = string(debug.Stack())
	}
	c.AbortWithStatusJSON(status, resp)
}

func errorBody(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

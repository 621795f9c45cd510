package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/community_connect/internal/apperrors"
	"github.com/SscSPs/community_connect/internal/middleware"
)

// ErrorResponse is the error body of every app server endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrNoSession),
		errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrAlreadyAuthenticated):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrAuthServiceUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError logs err at a level matching its status and writes the
// user-facing message, or fallback when err carries none.
func respondError(c *gin.Context, err error, fallback string) {
	respondErrorWithLog(c, err, fallback, fallback)
}

// respondErrorWithLog is respondError with a log message distinct from the
// user-facing fallback.
func respondErrorWithLog(c *gin.Context, err error, logMsg, fallback string) {
	status := statusFor(err)
	logger := middleware.GetLoggerFromContext(c)
	if status >= http.StatusInternalServerError {
		logger.Error(logMsg, slog.String("error", err.Error()))
	} else {
		logger.Warn(logMsg, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, ErrorResponse{Error: apperrors.UserMessage(err, fallback)})
}

func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromContext(c).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// pathID parses the :id path parameter, answering 400 when it is not a positive integer.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id: " + c.Param("id")})
		return 0, false
	}
	return id, true
}

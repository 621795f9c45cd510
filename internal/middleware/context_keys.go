package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/community_connect/internal/core/domain"
)

// contextKey is used for values stored in both the Gin and the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	userIDKey     = contextKey("userID")
	sessionCtxKey = contextKey("session")
	requestIDKey  = contextKey("requestID")
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It falls back to the default logger so callers never need a nil check.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// RequestIDFromCtx returns the request id set by StructuredLoggingMiddleware, or "".
func RequestIDFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// GetUserIDFromContext retrieves the authenticated member ID from the Gin context.
// It returns the member ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		id, ok := v.(int)
		return id, ok
	}
	// check in the request context as well
	if v, ok := c.Request.Context().Value(userIDKey).(int); ok {
		return v, true
	}
	return 0, false
}

// GetSessionFromContext returns the live session the auth middleware resolved
// for this request.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	v, exists := c.Get(string(sessionCtxKey))
	if !exists {
		return nil, false
	}
	sess, ok := v.(*domain.Session)
	return sess, ok && sess.Active()
}

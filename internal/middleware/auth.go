package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/SscSPs/community_connect/internal/utils"
)

// SessionSource yields the live session, or nil when anonymous.
type SessionSource interface {
	Session() *domain.Session
}

// AuthMiddleware validates the bearer session token and binds the request to
// the live session. Tokens issued for an earlier session are rejected, so
// logout invalidates every outstanding token.
func AuthMiddleware(jwtSecret string, sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, msg := resolveSession(c, jwtSecret, sessions)
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		bindSession(c, sess)
		c.Next()
	}
}

// OptionalAuthMiddleware binds the live session when a valid token is
// presented and lets anonymous requests through untouched.
func OptionalAuthMiddleware(jwtSecret string, sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if sess, _ := resolveSession(c, jwtSecret, sessions); sess != nil {
				bindSession(c, sess)
			}
		}
		c.Next()
	}
}

// resolveSession returns the live session the request's token belongs to, or
// nil and the reason it was refused.
func resolveSession(c *gin.Context, jwtSecret string, sessions SessionSource) (*domain.Session, string) {
	logger := GetLoggerFromCtx(c.Request.Context())

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		logger.Warn("Authorization header missing")
		return nil, "Authorization header required"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		logger.Warn("Authorization header format invalid")
		return nil, "Authorization header format must be Bearer {token}"
	}

	claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
	if err != nil {
		logger.Warn("Invalid token", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, "Token has expired"
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, "Token not valid yet"
		}
		return nil, "Invalid token"
	}

	sess := sessions.Session()
	if sess == nil {
		logger.Info("Token presented without a live session", slog.String("jti", claims.ID))
		return nil, "Session has ended"
	}
	if err := utils.ValidateSessionClaims(claims, sess.ID, sess.CurrentUser.ID); err != nil {
		logger.Warn("Token does not match the live session", slog.String("jti", claims.ID))
		return nil, "Session has ended"
	}
	return sess, ""
}

func bindSession(c *gin.Context, sess *domain.Session) {
	userID := sess.CurrentUser.ID
	enrichedLogger := GetLoggerFromCtx(c.Request.Context()).With(
		slog.Int("user_id", userID),
		slog.String("role", string(sess.CurrentUser.Role)),
	)

	c.Set(string(userIDKey), userID)
	c.Set(string(sessionCtxKey), sess)
	c.Set(string(loggerCtxKey), enrichedLogger)
	c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), enrichedLogger))
}

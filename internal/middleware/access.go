package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/community_connect/internal/core/policy"
)

// RequirePage lets the request through only when the session user's current
// role may open page. It must run after AuthMiddleware. The role is read from
// the live session on every request, so role changes apply immediately.
func RequirePage(page policy.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		role := sess.CurrentUser.Role
		if !policy.Allows(role, page) {
			GetLoggerFromContext(c).Warn("Page denied by role",
				slog.String("page", string(page)),
				slog.String("role", string(role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Your role does not give access to this page"})
			return
		}
		c.Next()
	}
}

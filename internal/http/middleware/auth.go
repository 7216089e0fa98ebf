package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tenantly.app/api-server/common/logger"
	"tenantly.app/api-server/internal/model"
	"tenantly.app/api-server/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// RequireAuth resolves the bearer token to an active user and stashes it in
// the request context. Aborts with 401 on any failure.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, user)
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			UserID:         logger.Ptr(user.ID),
			OrganizationID: logger.Ptr(user.OrganizationID),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole gates a route to principals with exactly the given role. Must
// run after RequireAuth.
func RequireRole(role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c.Request.Context())
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// GetUser returns the authenticated principal, or nil outside RequireAuth.
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

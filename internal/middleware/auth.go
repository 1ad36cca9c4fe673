package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fileportal/internal/domain"
	"fileportal/internal/domain/auth"
	"fileportal/internal/pkg/response"
)

const (
	ContextUser   = "user"
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// RequireUser resolves the session cookie and aborts with 401 when it is
// missing, expired or stale.
func RequireUser(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, _ := c.Cookie(auth.SessionCookie)
		user, err := authService.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextRole, user.Role)
		c.Next()
	}
}

// RequireRole layers a role check on top of RequireUser.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
			c.Abort()
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
		c.Abort()
	}
}

// CurrentUser returns the authenticated user set by RequireUser, or nil.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}

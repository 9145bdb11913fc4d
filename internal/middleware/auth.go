package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prodigyhire/backend/internal/auth"
	"github.com/prodigyhire/backend/internal/dto"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// Authenticate extracts the principal from "Authorization: Bearer <token>"
// and stores user id and role in the gin context for the handlers.
func Authenticate(mgr *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Not authorized, no token provided"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Authorization header format must be Bearer {token}"))
			return
		}

		principal, err := mgr.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Not authorized, token failed"))
			return
		}

		c.Set(ctxUserID, principal.UserID)
		c.Set(ctxRole, principal.Role)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.Error("Role "+role+" is not authorized to access this route"))
	}
}

// UserID returns the authenticated caller's id. Zero when unauthenticated.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func Role(c *gin.Context) string {
	if v, ok := c.Get(ctxRole); ok {
		if r, ok := v.(string); ok {
			return r
		}
	}
	return ""
}

// Package middleware provides gin middleware for the HTTP layer.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"studyhall/internal/infrastructure/auth"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/utils"
)

const (
	// ContextUserIDKey is the gin context key for the authenticated user ID.
	ContextUserIDKey = "user_id"
	// ContextRoleKey is the gin context key for the authenticated role.
	ContextRoleKey = "role"
)

// Auth validates the Bearer token and stores the caller's identity on the
// request context.
func Auth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authorization header is required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authorization header must be a Bearer token"))
			c.Abort()
			return
		}

		claims, err := jwtService.Validate(parts[1])
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin aborts unless the authenticated caller has the admin role.
// Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFromContext(c) != "admin" {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user ID, or 0 when absent.
func UserIDFromContext(c *gin.Context) uint {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

// RoleFromContext returns the authenticated role, or "" when absent.
func RoleFromContext(c *gin.Context) string {
	v, ok := c.Get(ContextRoleKey)
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}

// IsStaff reports whether the authenticated caller is staff.
func IsStaff(c *gin.Context) bool {
	return RoleFromContext(c) == "admin"
}

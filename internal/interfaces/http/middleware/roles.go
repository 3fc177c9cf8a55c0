package middleware

import (
	"net/http"

	"github.com/glosas/backend/internal/domain/identity"
	"github.com/glosas/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequireRoles allows the request through only when the authenticated
// role is in the allowed set. Admin passes every gate. Must run after
// JWTAuthMiddleware.
func RequireRoles(allowed ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr := GetJWTRole(c)
		if roleStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		role, err := identity.ParseRole(roleStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Unknown role"))
			return
		}

		if err := identity.Authorize(role, allowed...); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient role"))
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	domainerr "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/integration"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/dto"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "auth_user_id"
	ContextRole   = "auth_role"
)

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's identity in the gin context
func RequireAuth(tokens integration.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects authenticated callers without the admin role. It must
// run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != entity.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Admin role required",
			})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's user ID
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// Role returns the authenticated caller's role
func Role(c *gin.Context) entity.Role {
	return entity.Role(c.GetString(ContextRole))
}

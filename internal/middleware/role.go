package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frontdesk/internal/pkg/jwt"
	"frontdesk/internal/pkg/response"
)

// RequireRole lets the request through when the token role is one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}
		if _, ok := allowed[role]; !ok {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}
		c.Next()
	}
}

// ManagerOnly guards room and rate changes.
func ManagerOnly() gin.HandlerFunc {
	return RequireRole(jwt.RoleManager)
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"frontdesk/internal/pkg/jwt"
	"frontdesk/internal/pkg/response"
)

// JWTAuth validates a Bearer token and sets staff_id, staff_name and role.
// Websocket clients cannot set headers, so ?token= is accepted on upgrades.
func JWTAuth(j *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, code := bearerToken(c)
		switch code {
		case "AUTH_HEADER_MISSING":
			response.Abort(c, http.StatusUnauthorized, code, "Missing Authorization header")
			return
		case "INVALID_AUTH_FORMAT":
			response.Abort(c, http.StatusUnauthorized, code, "Authorization header must be: Bearer <token>")
			return
		}

		claims, err := j.ValidateToken(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set("staff_id", claims.StaffID)
		c.Set("staff_name", claims.Name)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, string) {
	h := c.GetHeader("Authorization")
	if h == "" {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			if t := strings.TrimSpace(c.Query("token")); t != "" {
				return t, ""
			}
		}
		return "", "AUTH_HEADER_MISSING"
	}

	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", "INVALID_AUTH_FORMAT"
	}
	return strings.TrimSpace(parts[1]), ""
}

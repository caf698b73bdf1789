package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/utils"
)

// StaffAuthMiddleware guards the staff endpoints with a static bearer token.
type StaffAuthMiddleware struct {
	token string
}

func NewStaffAuthMiddleware(token string) *StaffAuthMiddleware {
	return &StaffAuthMiddleware{token: token}
}

func (m *StaffAuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.token == "" {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "staff access is not configured")
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" ||
			subtle.ConstantTimeCompare([]byte(parts[1]), []byte(m.token)) != 1 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid staff token")
			c.Abort()
			return
		}

		c.Next()
	}
}

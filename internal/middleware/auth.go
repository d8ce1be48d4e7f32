package middleware

import (
	"net/http"
	"strings"

	"ai-quiz-backend/internal/services"

	"github.com/gin-gonic/gin"
)

const AdminSessionKey = "admin_session"

// AdminAuth admits requests that carry the admin token in the token query
// parameter, or a session token from /api/admin/verify as a Bearer header.
func AdminAuth(admin *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := c.Query("token"); token != "" && admin.CheckToken(token) {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" && admin.ValidateToken(parts[1]) == nil {
			c.Set(AdminSessionKey, true)
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
}

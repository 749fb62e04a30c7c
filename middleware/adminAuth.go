package middleware

import (
	"net/http"
	"strings"

	"arakucamp/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the content management endpoints with the staff
// dashboard JWT.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := utils.ValidateAdminToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminSubject", subject)
		c.Set("isAdmin", true)
		c.Next()
	}
}

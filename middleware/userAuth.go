package middleware

import (
	"net/http"
	"strings"

	"arakucamp/utils"

	"github.com/gin-gonic/gin"
)

// FirebaseAuthMiddleware verifies the Google sign-in ID token and exposes the
// caller's Firebase UID to handlers under "firebaseUid".
func FirebaseAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Please sign in to continue",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Please sign in to continue",
			})
			return
		}

		token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired. Please sign in again.",
			})
			return
		}

		c.Set("firebaseUid", token.UID)
		c.Next()
	}
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	"tidyhouse/config"

	"github.com/gin-gonic/gin"
)

// AdminKeyMiddleware guards the back-office routes with a shared API key
// carried in the X-Admin-Key header.
func AdminKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := config.AppConfig.AdminAPIKey
		if expected == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Admin access is not configured"})
			return
		}

		key := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}

package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"voice_billing/pkg"

	"github.com/gin-gonic/gin"
)

const headerAPIKey = "X-API-Key"

// AdminAuth guards the operator routes with a static API key sent either as
// X-API-Key or as a Bearer token. An empty key disables the routes.
func AdminAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			writeError(c, pkg.NewDomainErrorSimple("ADMIN_NOT_CONFIGURED", "Admin API key not configured", http.StatusServiceUnavailable))
			c.Abort()
			return
		}
		presented := c.GetHeader(headerAPIKey)
		if presented == "" {
			presented = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
			writeError(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid API key", http.StatusUnauthorized))
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minutely/pkg/utils"
)

// WebhookAuthMiddleware guards the ingestion boundary with a shared secret.
// Anyone who knows the URL can otherwise inject arbitrary meetings and tasks,
// so a missing or misconfigured secret rejects every request.
func WebhookAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			utils.RespondError(c, http.StatusServiceUnavailable, "Webhook secret not configured")
			c.Abort()
			return
		}

		provided := c.GetHeader("X-Webhook-Secret")
		if !utils.SecureCompare(provided, secret) {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid webhook secret")
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FunctionKeyHeader carries the shared function key, mirroring the function
// host's key-based auth level.
const FunctionKeyHeader = "X-Functions-Key"

// FunctionKey guards endpoints that require the host's function-level key.
// The key may arrive in the X-Functions-Key header or the "code" query
// parameter. An empty configured key disables the check for local runs.
// Endpoints declared anonymous simply do not use this middleware.
func FunctionKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		presented := c.GetHeader(FunctionKeyHeader)
		if presented == "" {
			presented = c.Query("code")
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
			logrus.WithFields(logrus.Fields{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
			}).Warn("Rejected request with missing or invalid function key")

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}

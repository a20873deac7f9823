// internal/middleware/requestlogger.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/searchgate/backend/pkg/utils"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request with a request ID. If the caller didn't
// supply X-Request-ID, one is generated and echoed back.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" || !utils.ValidateRequestID(requestID) {
			requestID = utils.GenerateRequestID()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"ip_address":  c.ClientIP(),
		}).Info("Request completed")
	}
}

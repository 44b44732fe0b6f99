package middleware

import (
	"time"

	"socialboard/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with the outcome status.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}

package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"

	"github.com/youruser/cardforge/internal/logging"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with an id and logs it once served.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = xid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		logging.Info("request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

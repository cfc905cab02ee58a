package middleware

import (
	"time"

	"github.com/Dishalex/PhotoShare/internal/logging"
	"github.com/Dishalex/PhotoShare/internal/metrics"

	"github.com/gin-gonic/gin"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger attaches a request id, records metrics and writes one access log line per
// request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 64 {
			requestID = logging.GenerateRequestID()
		}
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(logging.ContextWithRequestID(c.Request.Context(), requestID))

		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		metrics.RecordAPIRequest(c.Request.Method, c.FullPath(), status, duration)

		event := logging.Ctx(c.Request.Context()).Info()
		if status >= 500 {
			event = logging.Ctx(c.Request.Context()).Error()
		} else if status >= 400 {
			event = logging.Ctx(c.Request.Context()).Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("duration", duration).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}

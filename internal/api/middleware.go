package api

import (
	"strings"
	"time"
	"travel-compare-service/internal/platform/obs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// requestID reuses a caller-supplied X-Request-ID or generates one, and
// stores it in the request context for obs.Time and the access log.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(obs.WithRequestID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// accessLog logs end-to-end request duration and response size, and feeds the
// request latency histogram when metrics are enabled.
func accessLog(log logrus.FieldLogger, m Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		dur := time.Since(start)
		status := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if m != nil {
			m.HTTPObserved(c.Request.Method, route, status, dur)
		}

		entry := log.WithFields(logrus.Fields{
			"req_id": obs.RequestID(c.Request.Context()),
			"method": c.Request.Method,
			"path":   c.Request.URL.RequestURI(),
			"status": status,
			"bytes":  c.Writer.Size(),
			"dur_ms": dur.Milliseconds(),
		})

		switch {
		case status >= 500:
			entry.Error("request completed")
		case status >= 400:
			entry.Warn("request completed")
		default:
			entry.Info("request completed")
		}
	}
}

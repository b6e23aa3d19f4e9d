package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"todo-assistant/pkg/log"
	"todo-assistant/pkg/response"
)

// SessionHeader lets clients pick the key used for rate limiting and history.
const SessionHeader = "X-Session-ID"

// RateLimit rejects requests beyond the configured per-session rate. The key
// is the X-Session-ID header, falling back to the client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := c.GetHeader(SessionHeader)
		if key == "" {
			key = c.ClientIP()
		}
		if err := m.limiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c, err)
			return
		}
		c.Next()
	}
}

// Logger writes one line per request and tags the request context with the
// session id so downstream log lines carry it.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		if sid := c.GetHeader(SessionHeader); sid != "" {
			c.Request = c.Request.WithContext(log.WithSessionID(c.Request.Context(), sid))
		}

		c.Next()

		m.l.Infof(c.Request.Context(), "%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

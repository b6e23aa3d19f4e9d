package middleware

import (
	"todo-assistant/pkg/log"
	"todo-assistant/pkg/ratelimit"
)

// Middleware holds dependencies shared by the gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *ratelimit.Limiter
}

// New creates the middleware set. A nil limiter disables rate limiting.
func New(l log.Logger, limiter *ratelimit.Limiter) Middleware {
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}

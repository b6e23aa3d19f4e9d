// Package ratelimit provides per-key token bucket limiting with bounded memory.
package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// ErrRateLimited is returned by Allow when the key has no tokens left.
var ErrRateLimited = errors.New("rate limit exceeded")

const (
	DefaultTrackedKeys = 1000
	DefaultIdleTTL     = 5 * time.Minute
)

// Config configures a Limiter.
type Config struct {
	RequestsPerMin int
	Burst          int           // 0 means RequestsPerMin/10, at least 1
	TrackedKeys    int           // LRU capacity
	IdleTTL        time.Duration // buckets unused this long are dropped
}

// Limiter keeps one token bucket per key. Idle buckets expire, and the least
// recently used bucket is evicted once TrackedKeys is reached.
type Limiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Limiter. RequestsPerMin must be positive.
func New(cfg Config) (*Limiter, error) {
	if cfg.RequestsPerMin <= 0 {
		return nil, fmt.Errorf("ratelimit: requests per minute must be positive, got %d", cfg.RequestsPerMin)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = max(cfg.RequestsPerMin/10, 1)
	}
	if cfg.TrackedKeys <= 0 {
		cfg.TrackedKeys = DefaultTrackedKeys
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}

	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.TrackedKeys, nil, cfg.IdleTTL),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0), // per second
		burst:    cfg.Burst,
	}, nil
}

// Allow consumes one token for key.
func (l *Limiter) Allow(key string) error {
	l.mu.Lock()
	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	l.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}

// Tracked returns the number of keys currently holding a bucket.
func (l *Limiter) Tracked() int {
	return l.limiters.Len()
}

package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
)

// RateLimiter is a per-IP fixed-window counter. The store is single-process
// by contract, so an in-memory window is sufficient; entries for expired
// windows are reaped lazily on each hit.
type RateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	message string
	hits    map[string]*windowCount

	now func() time.Time
}

type windowCount struct {
	start time.Time
	count int
}

// NewRateLimiter allows max requests per IP per window.
func NewRateLimiter(max int, window time.Duration, message string) *RateLimiter {
	return &RateLimiter{
		max:     max,
		window:  window,
		message: message,
		hits:    make(map[string]*windowCount),
		now:     time.Now,
	}
}

// Middleware rejects requests over the limit with a 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}
		if !rl.Allow(ip) {
			response.TooManyRequests(c, rl.message)
			return
		}
		c.Next()
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	wc, ok := rl.hits[key]
	if !ok || now.Sub(wc.start) >= rl.window {
		rl.hits[key] = &windowCount{start: now, count: 1}
		rl.reap(now)
		return true
	}
	wc.count++
	return wc.count <= rl.max
}

// reap drops expired windows. Called with the lock held.
func (rl *RateLimiter) reap(now time.Time) {
	for key, wc := range rl.hits {
		if now.Sub(wc.start) >= rl.window {
			delete(rl.hits, key)
		}
	}
}

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, "slow down")
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "hit %d within the limit", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"), "the fourth hit is over the limit")

	// A different key has its own window.
	assert.True(t, rl.Allow("5.6.7.8"))

	// The window resets once it expires.
	now = now.Add(time.Minute)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRateLimiterReapsExpired(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, "slow down")
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	rl.Allow("b")

	now = now.Add(2 * time.Minute)
	rl.Allow("c")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Len(t, rl.hits, 1, "expired windows are reaped on the next fresh hit")
}

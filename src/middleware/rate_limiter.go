package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterEntry holds a rate limiter with last used timestamp
type limiterEntry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// keyRateLimiter manages per-key rate limiters; stale keys are evicted lazily
type keyRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newKeyRateLimiter(limit rate.Limit, burst int) *keyRateLimiter {
	return &keyRateLimiter{
		limiters:  make(map[string]*limiterEntry),
		limit:     limit,
		burst:     burst,
		idleTTL:   10 * time.Minute,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (k *keyRateLimiter) allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastSweep) > k.idleTTL {
		k.sweep(now)
	}

	entry, ok := k.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.limiters[key] = entry
	}
	entry.lastUsed = now
	return entry.limiter.AllowN(now, 1)
}

// sweep removes entries not used within idleTTL; caller holds mu
func (k *keyRateLimiter) sweep(now time.Time) {
	cutoff := now.Add(-k.idleTTL)
	for key, entry := range k.limiters {
		if entry.lastUsed.Before(cutoff) {
			delete(k.limiters, key)
		}
	}
	k.lastSweep = now
}

// RateLimitConfig defines configuration for the rate limiting middleware
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

// NewIPRateLimitingMiddleware creates a Gin middleware that enforces per-IP limits.
// Used on the login endpoint to slow down password guessing.
func NewIPRateLimitingMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}

	limit := rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	limiter := newKeyRateLimiter(limit, cfg.Burst)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, try again later",
			})
			return
		}

		c.Next()
	}
}

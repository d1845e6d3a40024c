package server

import (
	"sync"
	"time"

	"github.com/DevalGit/AccountEntry/internal/cache"
	"github.com/gin-gonic/gin"
)

// rateLimiter is a fixed-window counter per client key. Window buckets
// live in a TTL cache; expiry is the window rollover.
type rateLimiter struct {
	limit   int
	window  time.Duration
	buckets *cache.TTLCache[string, *rateLimitBucket]
}

type rateLimitBucket struct {
	mu    sync.Mutex
	count int
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:   limit,
		window:  window,
		buckets: cache.NewTTLCache[string, *rateLimitBucket](),
	}
}

func (r *rateLimiter) Allow(key string) bool {
	if key == "" {
		return false
	}
	bucket := r.buckets.GetOrSet(key, r.window, func() *rateLimitBucket {
		return &rateLimitBucket{}
	})

	bucket.mu.Lock()
	defer bucket.mu.Unlock()
	if bucket.count >= r.limit {
		return false
	}
	bucket.count++
	return true
}

func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Allow(c.ClientIP()) {
			AbortWithError(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

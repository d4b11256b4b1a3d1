package httpmiddleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is an in-memory per-client token bucket; for multi-replica
// deployments swap to a shared backend.
type RateLimiter struct {
	capacity int
	perMin   int

	mu      sync.Mutex
	clients map[string]*tokenState
}

type tokenState struct {
	tokens   int
	refilled time.Time
}

// NewRateLimiter creates a limiter allowing perMinute requests per client IP,
// with bursts up to capacity.
func NewRateLimiter(capacity, perMinute int) *RateLimiter {
	if capacity <= 0 {
		capacity = perMinute
	}
	return &RateLimiter{
		capacity: capacity,
		perMin:   perMinute,
		clients:  make(map[string]*tokenState),
	}
}

// Middleware returns a gin handler enforcing the per-IP limit.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.allow(ip, time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit"})
			return
		}
		c.Next()
	}
}

func (l *RateLimiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	st, ok := l.clients[key]
	if !ok {
		l.clients[key] = &tokenState{tokens: l.capacity - 1, refilled: now}
		return true
	}

	refill := int(now.Sub(st.refilled).Minutes() * float64(l.perMin))
	if refill > 0 {
		st.tokens += refill
		if st.tokens > l.capacity {
			st.tokens = l.capacity
		}
		st.refilled = now
	}
	if st.tokens <= 0 {
		return false
	}
	st.tokens--
	return true
}

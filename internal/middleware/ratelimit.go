package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
)

// RateLimiter implements a fixed-window per-IP request cap. Counters live in
// an expiring in-process cache; when the window entry expires the count
// starts over. This matches the UI expectation of a short human-readable
// refusal rather than request queuing.
type RateLimiter struct {
	counters *cache.Cache
	window   time.Duration
}

func NewRateLimiter(window time.Duration) *RateLimiter {
	return &RateLimiter{
		counters: cache.New(window, 2*window),
		window:   window,
	}
}

// Limit returns a middleware allowing max requests per window per client IP
// for the given action.
func (rl *RateLimiter) Limit(action string, max int, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", action, ClientIP(c))

		count, err := rl.counters.IncrementInt64(key, 1)
		if err != nil {
			// First request in this window.
			rl.counters.Set(key, int64(1), rl.window)
			count = 1
		}

		if count > int64(max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": message})
			return
		}
		c.Next()
	}
}

// ClientIP prefers the first X-Forwarded-For hop, the way the app is
// deployed behind a proxy.
func ClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	ip := c.ClientIP()
	if ip == "" {
		return "unknown"
	}
	return ip
}

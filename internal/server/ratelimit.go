package server

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// ClientLimiter implements per-client rate limiting keyed by remote IP
type ClientLimiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewClientLimiter creates a new rate limiter
func NewClientLimiter(requestsPerSecond float64, burst int) *ClientLimiter {
	if burst <= 0 {
		burst = 5
	}

	return &ClientLimiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Allow checks if a request from the client is allowed without waiting
func (l *ClientLimiter) Allow(clientIP string) bool {
	return l.getLimiter(clientIP).Allow()
}

// getLimiter returns the rate limiter for a client
func (l *ClientLimiter) getLimiter(clientIP string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[clientIP]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[clientIP]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[clientIP] = limiter

	return limiter
}

// RateLimit returns middleware that rejects clients over their request budget
func RateLimit(limiter *ClientLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}

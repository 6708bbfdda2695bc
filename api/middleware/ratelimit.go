// ABOUTME: Rate limiting middleware for admin API endpoints
// ABOUTME: Implements per-IP rate limiting with configurable limits

package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"
)

// RateLimiter tracks request counts per IP
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string]*bucket
	limit    int
	window   time.Duration
}

// bucket tracks requests for a specific key
type bucket struct {
	count       int
	windowStart time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string]*bucket),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()

	return rl
}

// cleanup removes expired buckets periodically
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, b := range rl.requests {
			if now.Sub(b.windowStart) > rl.window {
				delete(rl.requests, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow checks if a request from the given key is allowed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, exists := rl.requests[key]

	if !exists || now.Sub(b.windowStart) > rl.window {
		rl.requests[key] = &bucket{
			count:       1,
			windowStart: now,
		}
		return true
	}

	if b.count < rl.limit {
		b.count++
		return true
	}

	return false
}

// extractIP gets the client IP from the request
func extractIP(r *http.Request) string {
	// X-Forwarded-For first, last entry is the nearest proxy's client
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		for i := len(xff) - 1; i >= 0; i-- {
			if xff[i] == ',' || xff[i] == ' ' {
				return xff[i+1:]
			}
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

// RateLimitMiddleware creates a middleware that enforces rate limits
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r)

			if !limiter.Allow(ip) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.limit))
				w.Header().Set("X-RateLimit-Window", limiter.window.String())
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(limiter.window.Seconds())))
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"Too many requests","message":"Rate limit exceeded. Please try again later."}`))
				return
			}

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.limit))
			w.Header().Set("X-RateLimit-Window", limiter.window.String())

			next.ServeHTTP(w, r)
		})
	}
}

package auth

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimiter throttles credential-guessing on the login endpoint.
// Attempts are counted per client IP inside a sliding window; exceeding
// the limit blocks the IP for the block duration.
type RateLimiter struct {
	mu          sync.Mutex
	attempts    map[string]*attemptInfo
	maxAttempts int
	window      time.Duration
	blockTime   time.Duration
}

type attemptInfo struct {
	count     int
	firstTry  time.Time
	blockedAt time.Time
}

// NewRateLimiter creates a rate limiter allowing maxAttempts per window,
// blocking for blockTime once exceeded.
func NewRateLimiter(maxAttempts int, window, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		attempts:    make(map[string]*attemptInfo),
		maxAttempts: maxAttempts,
		window:      window,
		blockTime:   blockTime,
	}
}

// DefaultRateLimiter allows 5 attempts per 15 minutes.
func DefaultRateLimiter() *RateLimiter {
	return NewRateLimiter(5, 15*time.Minute, 15*time.Minute)
}

// Allow reports whether key may attempt another login, and how long to
// wait if it may not.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	info, ok := rl.attempts[key]
	if !ok || now.Sub(info.firstTry) > rl.window && info.blockedAt.IsZero() {
		rl.attempts[key] = &attemptInfo{count: 1, firstTry: now}
		return true, 0
	}

	if !info.blockedAt.IsZero() {
		remaining := rl.blockTime - now.Sub(info.blockedAt)
		if remaining > 0 {
			return false, remaining
		}
		rl.attempts[key] = &attemptInfo{count: 1, firstTry: now}
		return true, 0
	}

	info.count++
	if info.count > rl.maxAttempts {
		info.blockedAt = now
		return false, rl.blockTime
	}

	return true, 0
}

// Reset clears the attempt count for key after a successful login.
func (rl *RateLimiter) Reset(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.attempts, key)
}

// Middleware returns an echo middleware enforcing the limit per client IP.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, retryAfter := rl.Allow(c.RealIP())
			if !allowed {
				seconds := int(retryAfter.Seconds())
				if seconds < 1 {
					seconds = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "too many login attempts",
				})
			}
			return next(c)
		}
	}
}

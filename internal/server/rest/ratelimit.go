package rest

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	ttl      time.Duration
}

// NewRateLimiter creates a per-IP limiter. Idle entries are dropped after ten minutes.
func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
		ttl:      10 * time.Minute,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.ttl / 2)
	defer ticker.Stop()
	for now := range ticker.C {
		rl.sweep(now)
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.ttl {
			delete(rl.visitors, ip)
		}
	}
}

// Middleware answers 429 with Retry-After once an IP exceeds its budget.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(c.RealIP(), time.Now()) {
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(rl.rate)))
				return echo.NewHTTPError(http.StatusTooManyRequests, "Demasiados intentos, intenta más tarde")
			}
			return next(c)
		}
	}
}

// maxRetryAfter caps the advertised wait for very slow limits.
const maxRetryAfter = time.Hour

// retryAfterSeconds is the time until one more token, in whole seconds
// within [1, maxRetryAfter].
func retryAfterSeconds(r rate.Limit) int {
	limit := int(maxRetryAfter / time.Second)
	if r <= 0 {
		return limit
	}
	wait := 1 / float64(r)
	if wait >= maxRetryAfter.Seconds() {
		return limit
	}
	return max(int(math.Ceil(wait)), 1)
}

package ratelimiter

import (
	"sync"

	"safeclinic-web/internal/app/contracts"

	"golang.org/x/time/rate"
)

// LoginLimiter throttles login attempts per email with a token bucket per
// address. Limiters for addresses not seen again are cheap enough to keep
// for the process lifetime.
type LoginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewLoginLimiter(perMinute, burst int) contracts.LoginRateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &LoginLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (l *LoginLimiter) Allow(email string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[email]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[email] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}

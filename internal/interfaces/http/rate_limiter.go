package http

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/cueros-api/internal/application/dto"
)

// LoginRateLimiter limita intentos de login por IP.
type LoginRateLimiter struct {
	limiters   map[string]*limiterEntry
	mu         sync.Mutex
	rate       rate.Limit
	burst      int
	retryAfter int // segundos hasta recuperar un intento
	entryTTL   time.Duration
	now        func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginRateLimiter perMinute intentos sostenidos por minuto, burst de ráfaga.
func NewLoginRateLimiter(perMinute, burst int) *LoginRateLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	if burst <= 0 {
		burst = 5
	}
	return &LoginRateLimiter{
		limiters:   make(map[string]*limiterEntry),
		rate:       rate.Limit(float64(perMinute) / 60),
		burst:      burst,
		retryAfter: (60 + perMinute - 1) / perMinute,
		entryTTL:   10 * time.Minute,
		now:        time.Now,
	}
}

// StartCleanup elimina entradas inactivas cada interval hasta que done se cierre.
func (rl *LoginRateLimiter) StartCleanup(interval time.Duration, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-done:
				return
			}
		}
	}()
}

func (rl *LoginRateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if e, ok := rl.limiters[key]; ok {
		e.lastSeen = rl.now()
		return e.limiter
	}
	l := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[key] = &limiterEntry{limiter: l, lastSeen: rl.now()}
	return l
}

func (rl *LoginRateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := rl.now().Add(-rl.entryTTL)
	for k, e := range rl.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(rl.limiters, k)
		}
	}
}

// Middleware responde 429 cuando la IP agotó sus intentos.
func (rl *LoginRateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limiter := rl.limiterFor(c.IP())
		c.Set("X-RateLimit-Limit", strconv.Itoa(rl.burst))
		if !limiter.Allow() {
			c.Set("X-RateLimit-Remaining", "0")
			c.Set("Retry-After", strconv.Itoa(rl.retryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "TOO_MANY_REQUESTS",
				Message: "demasiados intentos de inicio de sesión, intente más tarde",
			})
		}
		c.Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		return c.Next()
	}
}

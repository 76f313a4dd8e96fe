package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"golang.org/x/time/rate"
)

const (
	bucketTTL  = 5 * time.Minute
	sweepEvery = time.Minute
)

type ipBucket struct {
	lim *rate.Limiter
	ts  time.Time
}

// loginLimiter token-bucket por IP. La limpieza de buckets viejos se hace en
// línea dentro de allow, amortizada a un barrido por minuto: así no queda
// ninguna goroutine ni ticker vivos cuando la app se apaga.
type loginLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*ipBucket
	lastSweep time.Time
	perSecond float64
	burst     int
	now       func() time.Time // inyectable en tests
}

func newLoginLimiter(perSecond float64, burst int) *loginLimiter {
	return &loginLimiter{
		buckets:   make(map[string]*ipBucket),
		perSecond: perSecond,
		burst:     burst,
		now:       time.Now,
	}
}

func (l *loginLimiter) allow(ip string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= sweepEvery {
		for k, b := range l.buckets {
			if now.Sub(b.ts) > bucketTTL {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &ipBucket{lim: rate.NewLimiter(rate.Limit(l.perSecond), l.burst)}
		l.buckets[ip] = b
	}
	b.ts = now
	return b.lim.Allow()
}

// LoginRateLimit token-bucket por IP de cliente para el endpoint de login.
// Acota los intentos de fuerza bruta sin afectar al resto de la API.
func LoginRateLimit(perSecond float64, burst int) fiber.Handler {
	limiter := newLoginLimiter(perSecond, burst)
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if ip == "" {
			ip = "unknown"
		}
		if !limiter.allow(ip) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiados intentos, espere un momento",
			})
		}
		return c.Next()
	}
}

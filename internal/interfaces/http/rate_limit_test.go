package http

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Una ráfaga dentro del burst pasa; el intento siguiente se bloquea.
func TestLoginLimiter_BurstAgotadoBloquea(t *testing.T) {
	limiter := newLoginLimiter(1, 5)
	for i := 0; i < 5; i++ {
		assert.True(t, limiter.allow("10.0.0.1"), "intento %d dentro del burst debe pasar", i+1)
	}
	assert.False(t, limiter.allow("10.0.0.1"), "agotado el burst debe bloquear")
}

// El límite es por IP: agotar el burst de una IP no afecta a otra.
func TestLoginLimiter_LimitePorIP(t *testing.T) {
	limiter := newLoginLimiter(1, 1)
	require.True(t, limiter.allow("10.0.0.1"))
	require.False(t, limiter.allow("10.0.0.1"))
	assert.True(t, limiter.allow("10.0.0.2"), "otra IP tiene su propio bucket")
}

// Los buckets sin actividad se barren en línea durante allow; no hay ninguna
// goroutine de limpieza de fondo.
func TestLoginLimiter_BarridoEliminaBucketsViejos(t *testing.T) {
	limiter := newLoginLimiter(1, 5)
	base := time.Now()
	limiter.now = func() time.Time { return base }

	require.True(t, limiter.allow("10.0.0.1"))
	require.Len(t, limiter.buckets, 1)

	// Pasados TTL + intervalo de barrido, el siguiente allow limpia.
	limiter.now = func() time.Time { return base.Add(bucketTTL + sweepEvery) }
	require.True(t, limiter.allow("10.0.0.2"))

	_, stale := limiter.buckets["10.0.0.1"]
	assert.False(t, stale, "el bucket viejo debe haberse barrido")
	_, fresh := limiter.buckets["10.0.0.2"]
	assert.True(t, fresh)
}

// El middleware responde 429 con código RATE_LIMITED al agotar el burst.
func TestLoginRateLimit_Responde429(t *testing.T) {
	app := fiber.New()
	app.Post("/login", LoginRateLimit(1, 2), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/login", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "RATE_LIMITED")
}

package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instrumentedApp() *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(Instrument())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("falla interna")
	})
	return app
}

func TestInstrument_CuentaRequestConEtiquetas(t *testing.T) {
	app := instrumentedApp()

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/ok", "200"))
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/ok", "200"))
	assert.Equal(t, before+1, after)
}

// El gauge de in-flight debe volver a su valor inicial aunque el handler
// entre en pánico; el recover middleware convierte el pánico en 500 pero la
// pila se desenrolla a través de Instrument.
func TestInstrument_InFlightVuelveACeroTrasPanico(t *testing.T) {
	app := instrumentedApp()

	before := testutil.ToFloat64(httpInFlight)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, before, testutil.ToFloat64(httpInFlight),
		"un pánico no debe dejar el gauge de in-flight incrementado")
}

package http

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/domain"
)

// respondVia monta respondError en una app mínima y devuelve status + cuerpo.
func respondVia(t *testing.T, err error) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	resp, rerr := app.Test(httptest.NewRequest(fiber.MethodGet, "/x", nil), -1)
	require.NoError(t, rerr)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// Cuenta desactivada es una falla de autenticación: debe responder 401 con
// su código propio, no 403.
func TestRespondError_CuentaInactiva_Retorna401ConCodigoPropio(t *testing.T) {
	status, body := respondVia(t, domain.ErrAccountInactive)

	assert.Equal(t, fiber.StatusUnauthorized, status,
		"cuenta desactivada debe mapear a 401, no a 403")
	assert.Contains(t, body, "ACCOUNT_INACTIVE",
		"el código debe distinguirla de credenciales inválidas")
}

func TestRespondError_MapeoDeSentinelas(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"input inválido", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"factura vacía", domain.ErrEmptyInvoice, fiber.StatusBadRequest, "VALIDATION"},
		{"credenciales inválidas", domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"cuenta inactiva", domain.ErrAccountInactive, fiber.StatusUnauthorized, "ACCOUNT_INACTIVE"},
		{"acceso denegado", domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"email duplicado", domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
		{"recurso duplicado", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"error envuelto", fmt.Errorf("repo: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{"error desconocido", fmt.Errorf("fallo inesperado"), fiber.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := respondVia(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Contains(t, body, tc.code)
		})
	}
}

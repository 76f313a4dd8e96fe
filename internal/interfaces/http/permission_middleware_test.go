package http_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	apphttp "github.com/tu-usuario/billing-pro/internal/interfaces/http"
)

// fakeChecker implementa el contrato del middleware con respuestas fijas.
type fakeChecker struct {
	allowed bool
	err     error

	gotRoleID string
	gotModule string
	gotAction entity.Action
}

func (f *fakeChecker) Authorize(roleID, module string, action entity.Action) (bool, error) {
	f.gotRoleID = roleID
	f.gotModule = module
	f.gotAction = action
	return f.allowed, f.err
}

func buildPermTestApp(checker *fakeChecker) *fiber.App {
	app := fiber.New()
	app.Get("/invoices",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(entity.ModuleInvoices, entity.ActionRead, checker),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)
	return app
}

func doPermRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Permiso concedido → el handler responde 200 y el checker recibe el role_id
// del token con el módulo y la acción de la ruta.
func TestRequirePermission_Concedido(t *testing.T) {
	checker := &fakeChecker{allowed: true}
	app := buildPermTestApp(checker)

	resp := doPermRequest(t, app, tokenForRole(t, entity.RoleManager))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testRoleID, checker.gotRoleID)
	assert.Equal(t, entity.ModuleInvoices, checker.gotModule)
	assert.Equal(t, entity.ActionRead, checker.gotAction)
}

// Permiso denegado (default-deny) → HTTP 403.
func TestRequirePermission_Denegado(t *testing.T) {
	checker := &fakeChecker{allowed: false}
	app := buildPermTestApp(checker)

	resp := doPermRequest(t, app, tokenForRole(t, entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Fallo de infraestructura al consultar la matriz → HTTP 503, no 403.
func TestRequirePermission_FalloInfra_Retorna503(t *testing.T) {
	checker := &fakeChecker{err: errors.New("db caída")}
	app := buildPermTestApp(checker)

	resp := doPermRequest(t, app, tokenForRole(t, entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

// Sin token no hay role_id: el AuthMiddleware corta antes con 401.
func TestRequirePermission_SinToken_Retorna401(t *testing.T) {
	checker := &fakeChecker{allowed: true}
	app := buildPermTestApp(checker)

	resp := doPermRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, checker.gotRoleID, "el checker no debe consultarse sin token")
}

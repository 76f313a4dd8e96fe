package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
)

// permissionChecker es el contrato mínimo que necesita el middleware para
// evaluar permisos. Lo implementa *access.Service; el uso de interfaz evita
// el import circular.
type permissionChecker interface {
	Authorize(roleID, module string, action entity.Action) (bool, error)
}

// RequirePermission devuelve un middleware Fiber que verifica si el rol del
// token tiene el flag de la acción en el módulo. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRoleID).
//
// Comportamiento:
//   - 403 Forbidden  → sin fila en la matriz o flag en false (default-deny).
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si no hay role_id en el contexto, responde 401.
func RequirePermission(module string, action entity.Action, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID := GetRoleID(c)
		if roleID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "role_id no encontrado en el token",
			})
		}

		allowed, err := checker.Authorize(roleID, module, action)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "sin permiso de " + string(action) + " en el módulo '" + module + "'",
			})
		}

		return c.Next()
	}
}

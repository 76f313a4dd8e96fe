// Package access centraliza la evaluación de permisos por módulo y el
// chequeo de scope multi-tenant. Las decisiones se toman sobre los claims
// del token (confianza a fecha de emisión) más la matriz de permisos en DB.
package access

import (
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// Principal claims de sesión verificados, tal como viajan en el JWT.
type Principal struct {
	UserID    string
	CompanyID string
	RoleID    string
	Role      string
	Email     string
}

// IsSuperAdmin indica si el principal tiene el rol Super Admin.
func (p Principal) IsSuperAdmin() bool {
	return p.Role == entity.RoleSuperAdmin
}

// CanAccessCompany chequeo de scope: el Super Admin accede a cualquier
// empresa; cualquier otro rol solo a la suya. Un companyID vacío en la
// petición se interpreta como "mi empresa" y pasa el chequeo.
func (p Principal) CanAccessCompany(companyID string) bool {
	if p.IsSuperAdmin() {
		return true
	}
	return companyID == "" || companyID == p.CompanyID
}

// Service evalúa permisos CRUD contra la matriz rol × módulo.
type Service struct {
	permRepo repository.PermissionRepository
}

// NewService construye el evaluador de permisos.
func NewService(permRepo repository.PermissionRepository) *Service {
	return &Service{permRepo: permRepo}
}

// Authorize devuelve true solo si existe fila (roleID, module) con el flag
// de la acción en true. Módulo desconocido, fila ausente o acción
// desconocida niegan (default-deny). El error solo se propaga ante fallo de
// infraestructura.
func (s *Service) Authorize(roleID, module string, action entity.Action) (bool, error) {
	if !entity.ValidModule(module) {
		return false, nil
	}
	perm, err := s.permRepo.Get(roleID, module)
	if err != nil {
		return false, err
	}
	return perm.Allows(action), nil
}

package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// PermissionRepository puerto de lectura de la matriz rol × módulo.
// Get devuelve (nil, nil) si no hay fila para el par: el caller debe
// interpretarlo como denegación (default-deny).
type PermissionRepository interface {
	Get(roleID, module string) (*entity.Permission, error)
	ListByRole(roleID string) ([]*entity.Permission, error)
}

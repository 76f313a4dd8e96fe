package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo lectura de la matriz rol × módulo.
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador.
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// Get obtiene la fila de permisos del par (rol, módulo). Devuelve (nil, nil)
// si no hay fila: el caller lo interpreta como denegación.
func (r *PermissionRepo) Get(roleID, module string) (*entity.Permission, error) {
	query := `
		SELECT id, role_id, module, can_create, can_read, can_update, can_delete
		FROM permissions WHERE role_id = $1 AND module = $2`
	var p entity.Permission
	err := r.q.QueryRow(context.Background(), query, roleID, module).Scan(
		&p.ID, &p.RoleID, &p.Module, &p.CanCreate, &p.CanRead, &p.CanUpdate, &p.CanDelete,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission: %w", err)
	}
	return &p, nil
}

// ListByRole devuelve todas las filas de permisos de un rol.
func (r *PermissionRepo) ListByRole(roleID string) ([]*entity.Permission, error) {
	query := `
		SELECT id, role_id, module, can_create, can_read, can_update, can_delete
		FROM permissions WHERE role_id = $1 ORDER BY module`
	rows, err := r.q.Query(context.Background(), query, roleID)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.RoleID, &p.Module, &p.CanCreate, &p.CanRead, &p.CanUpdate, &p.CanDelete); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

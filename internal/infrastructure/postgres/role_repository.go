package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo lectura del catálogo de roles sembrado en el despliegue.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `SELECT id, name, description, created_at FROM roles WHERE id = $1`
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&role.ID, &role.Name, &role.Description, &role.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// GetByName obtiene un rol por nombre (los nombres son únicos).
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	query := `SELECT id, name, description, created_at FROM roles WHERE name = $1`
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&role.ID, &role.Name, &role.Description, &role.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return &role, nil
}

// List devuelve el catálogo completo.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	query := `SELECT id, name, description, created_at FROM roles ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

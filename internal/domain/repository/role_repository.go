package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// RoleRepository puerto de lectura del catálogo fijo de roles.
// El catálogo se siembra en el despliegue; la API no crea roles.
type RoleRepository interface {
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
}

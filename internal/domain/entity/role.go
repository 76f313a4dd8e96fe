package entity

import "time"

// Catálogo fijo de roles. Se siembra en el despliegue (cmd/seed) y no se
// crea ni modifica a través de la API.
const (
	RoleSuperAdmin   = "Super Admin"
	RoleCompanyAdmin = "Company Admin"
	RoleManager      = "Manager"
	RoleUser         = "User"
)

// Role representa un paquete nombrado de permisos.
type Role struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

package entity

import "time"

// Company representa una organización/tenant del sistema. Es la raíz del
// scoping multi-tenant: todas las entidades de negocio (usuarios, productos,
// clientes, facturas) cuelgan de una Company vía CompanyID.
type Company struct {
	ID        string
	Name      string
	Slug      string // identificador URL-safe, único en el sistema
	Email     string
	Phone     string
	Address   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

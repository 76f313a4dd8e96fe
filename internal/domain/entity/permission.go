package entity

// Módulos protegidos por permisos (enumeración cerrada; debe coincidir con
// el CHECK de la tabla permissions).
const (
	ModuleCompanies = "companies"
	ModuleUsers     = "users"
	ModuleProducts  = "products"
	ModuleCustomers = "customers"
	ModuleInvoices  = "invoices"
	ModuleReports   = "reports"
)

// Action acción CRUD evaluable contra una fila de Permission.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ValidModule indica si el nombre pertenece a la enumeración cerrada de módulos.
func ValidModule(m string) bool {
	switch m {
	case ModuleCompanies, ModuleUsers, ModuleProducts, ModuleCustomers, ModuleInvoices, ModuleReports:
		return true
	}
	return false
}

// Permission fila (role, module) con sus flags CRUD.
// Invariante: a lo sumo una fila por par (RoleID, Module).
type Permission struct {
	ID        string
	RoleID    string
	Module    string
	CanCreate bool
	CanRead   bool
	CanUpdate bool
	CanDelete bool
}

// Allows evalúa el flag correspondiente a la acción. Acciones desconocidas
// se niegan (default-deny).
func (p *Permission) Allows(a Action) bool {
	if p == nil {
		return false
	}
	switch a {
	case ActionCreate:
		return p.CanCreate
	case ActionRead:
		return p.CanRead
	case ActionUpdate:
		return p.CanUpdate
	case ActionDelete:
		return p.CanDelete
	}
	return false
}

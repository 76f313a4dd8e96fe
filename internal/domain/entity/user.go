package entity

import "time"

// User representa un usuario del sistema. Pertenece a exactamente una
// Company y tiene exactamente un Role.
type User struct {
	ID           string
	CompanyID    string
	RoleID       string
	Email        string // único en todo el sistema
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

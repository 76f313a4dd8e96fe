package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// PermissionResponse fila de permiso en respuestas.
type PermissionResponse struct {
	Module    string `json:"module"`
	CanCreate bool   `json:"can_create"`
	CanRead   bool   `json:"can_read"`
	CanUpdate bool   `json:"can_update"`
	CanDelete bool   `json:"can_delete"`
}

// MeResponse para GET /api/auth/me: usuario + rol + empresa + permisos.
type MeResponse struct {
	User        UserResponse         `json:"user"`
	Role        RoleResponse         `json:"role"`
	Company     *CompanyResponse     `json:"company,omitempty"` // nil para Super Admin sin empresa
	Permissions []PermissionResponse `json:"permissions"`
}

// RoleResponse rol en respuestas.
type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

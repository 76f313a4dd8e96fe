package dto

import "time"

// CreateUserRequest body para POST /api/users.
// CompanyID es opcional: si va vacío se usa la empresa del token; solo el
// Super Admin puede indicar una empresa distinta.
type CreateUserRequest struct {
	CompanyID string `json:"company_id,omitempty"`
	RoleID    string `json:"role_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name,omitempty"`
}

// UpdateUserRequest body para PUT /api/users/:id.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	RoleID   *string `json:"role_id,omitempty"`
	Password *string `json:"password,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	RoleID    string    `json:"role_id"`
	Role      string    `json:"role,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

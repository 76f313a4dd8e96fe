package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/billing-pro/internal/application/access"
	"github.com/tu-usuario/billing-pro/internal/application/auth"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// UserUseCase administración de usuarios dentro del tenant. El permiso CRUD
// por módulo lo evalúa el middleware; aquí se aplica el chequeo de scope:
// un principal solo opera sobre usuarios de su empresa salvo Super Admin.
type UserUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// Create crea un usuario. El email es único en todo el sistema.
func (uc *UserUseCase) Create(p access.Principal, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	companyID := in.CompanyID
	if companyID == "" {
		companyID = p.CompanyID
	}
	if !p.CanAccessCompany(companyID) {
		return nil, domain.ErrForbidden
	}
	if in.Email == "" || in.Password == "" || in.RoleID == "" || companyID == "" {
		return nil, domain.ErrInvalidInput
	}

	role, err := uc.roleRepo.GetByID(in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrInvalidInput
	}
	// Solo un Super Admin puede otorgar el rol Super Admin.
	if role.Name == entity.RoleSuperAdmin && !p.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}

	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		RoleID:       in.RoleID,
		Email:        in.Email,
		PasswordHash: hash,
		Name:         name,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}
	resp := toUserResponse(user)
	resp.Role = role.Name
	return resp, nil
}

// GetByID obtiene un usuario aplicando el chequeo de scope.
func (uc *UserUseCase) GetByID(p access.Principal, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !p.CanAccessCompany(user.CompanyID) {
		return nil, domain.ErrForbidden
	}
	return toUserResponse(user), nil
}

// List lista usuarios de la empresa objetivo (la propia salvo Super Admin).
func (uc *UserUseCase) List(p access.Principal, companyID string, limit, offset int) ([]*dto.UserResponse, error) {
	if companyID == "" {
		companyID = p.CompanyID
	}
	if !p.CanAccessCompany(companyID) {
		return nil, domain.ErrForbidden
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.userRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update actualiza nombre, rol, password o estado (parcial).
func (uc *UserUseCase) Update(p access.Principal, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !p.CanAccessCompany(user.CompanyID) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.RoleID != nil {
		role, err := uc.roleRepo.GetByID(*in.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrInvalidInput
		}
		if role.Name == entity.RoleSuperAdmin && !p.IsSuperAdmin() {
			return nil, domain.ErrForbidden
		}
		user.RoleID = *in.RoleID
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario aplicando el chequeo de scope.
func (uc *UserUseCase) Delete(p access.Principal, id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if !p.CanAccessCompany(user.CompanyID) {
		return domain.ErrForbidden
	}
	return uc.userRepo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		RoleID:    u.RoleID,
		Email:     u.Email,
		Name:      u.Name,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

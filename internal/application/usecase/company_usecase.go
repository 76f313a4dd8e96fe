package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/billing-pro/internal/application/auth"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
	"github.com/tu-usuario/billing-pro/pkg/slug"
)

// CompanyUseCase administración de empresas (tenants). Todas las
// operaciones son de Super Admin; el router lo garantiza con RequireRole.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	roleRepo    repository.RoleRepository
	txRunner    CompanyTxRunner
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository, roleRepo repository.RoleRepository, txRunner CompanyTxRunner) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, roleRepo: roleRepo, txRunner: txRunner}
}

// Create crea la empresa y su primer usuario Company Admin en una sola
// transacción. El slug se genera del nombre.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.AdminEmail == "" || in.AdminPassword == "" {
		return nil, domain.ErrInvalidInput
	}

	adminRole, err := uc.roleRepo.GetByName(entity.RoleCompanyAdmin)
	if err != nil {
		return nil, err
	}
	if adminRole == nil {
		return nil, domain.ErrNotFound // catálogo de roles sin sembrar
	}

	hash, err := auth.HashPassword(in.AdminPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Slug:      slug.Generate(in.Name),
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	adminName := in.AdminName
	if adminName == "" {
		adminName = in.AdminEmail
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		RoleID:       adminRole.ID,
		Email:        in.AdminEmail,
		PasswordHash: hash,
		Name:         adminName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunCompany(ctx, func(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		return userRepo.Create(admin)
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List lista todas las empresas con paginación.
func (uc *CompanyUseCase) List(limit, offset int) ([]*dto.CompanyResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.companyRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompanyResponse(c))
	}
	return out, nil
}

// Update actualiza campos de la empresa (parcial). IsActive en false
// deshabilita el tenant sin borrar datos.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		company.Name = *in.Name
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina la empresa. Las filas dependientes caen por FK ON DELETE
// CASCADE (usuarios, productos, clientes, facturas y sus líneas).
func (uc *CompanyUseCase) Delete(id string) error {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.companyRepo.Delete(id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

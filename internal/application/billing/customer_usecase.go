package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/billing-pro/internal/application/access"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes (facturación).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente en la empresa del principal.
func (uc *CustomerUseCase) Create(p access.Principal, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if p.CompanyID == "" {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: p.CompanyID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente aplicando el chequeo de scope.
func (uc *CustomerUseCase) GetByID(p access.Principal, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !p.CanAccessCompany(customer.CompanyID) {
		return nil, domain.ErrForbidden
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes de la empresa objetivo.
func (uc *CustomerUseCase) List(p access.Principal, companyID string, limit, offset int) ([]*dto.CustomerResponse, error) {
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
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update actualiza un cliente (parcial).
func (uc *CustomerUseCase) Update(p access.Principal, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !p.CanAccessCompany(customer.CompanyID) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente aplicando el chequeo de scope.
func (uc *CustomerUseCase) Delete(p access.Principal, id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if !p.CanAccessCompany(customer.CompanyID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

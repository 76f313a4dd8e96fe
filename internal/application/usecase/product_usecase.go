package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/billing-pro/internal/application/access"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// ProductUseCase catálogo de productos del tenant.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto en la empresa del principal.
func (uc *ProductUseCase) Create(p access.Principal, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if p.CompanyID == "" {
		return nil, domain.ErrForbidden // un Super Admin sin empresa no tiene catálogo propio
	}
	if in.Name == "" || in.Price.IsNegative() || in.TaxRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   p.CompanyID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		TaxRate:     in.TaxRate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto aplicando el chequeo de scope.
func (uc *ProductUseCase) GetByID(p access.Principal, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !p.CanAccessCompany(product.CompanyID) {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// List lista productos de la empresa objetivo.
func (uc *ProductUseCase) List(p access.Principal, companyID string, limit, offset int) ([]*dto.ProductResponse, error) {
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
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, pr := range list {
		out = append(out, toProductResponse(pr))
	}
	return out, nil
}

// Update actualiza un producto (parcial).
func (uc *ProductUseCase) Update(p access.Principal, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !p.CanAccessCompany(product.CompanyID) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.TaxRate != nil {
		if in.TaxRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.TaxRate = *in.TaxRate
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto aplicando el chequeo de scope.
func (uc *ProductUseCase) Delete(p access.Principal, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !p.CanAccessCompany(product.CompanyID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toProductResponse(pr *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          pr.ID,
		CompanyID:   pr.CompanyID,
		Name:        pr.Name,
		Description: pr.Description,
		Price:       pr.Price,
		TaxRate:     pr.TaxRate,
		IsActive:    pr.IsActive,
		CreatedAt:   pr.CreatedAt,
		UpdatedAt:   pr.UpdatedAt,
	}
}

package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// Los Get* devuelven (nil, nil) cuando la fila no existe.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetBySlug(slug string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id string) error
}

package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}

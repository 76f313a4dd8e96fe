package usecase

import (
	"context"

	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// CompanyTxRunner ejecuta una función dentro de una transacción que incluye
// los repos de empresa y usuario. Crear una empresa y su primer Company
// Admin es atómico: o quedan ambos o ninguno.
type CompanyTxRunner interface {
	RunCompany(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}

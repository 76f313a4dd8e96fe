package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o servicio del catálogo de la empresa.
// TaxRate se almacena por producto pero el cálculo de totales usa la tasa
// plana configurada; ver internal/domain/billing.
type Product struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Price       decimal.Decimal
	TaxRate     decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

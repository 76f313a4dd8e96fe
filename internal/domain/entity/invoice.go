package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. Una factura nace en Pending; los demás estados se
// asignan solo por actualización explícita (no hay transición automática a
// Overdue al vencer DueDate).
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// ValidInvoiceStatus indica si el estado pertenece al conjunto permitido.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Invoice representa la cabecera de una factura.
// Invariante: Subtotal = Σ item.Total, Tax = Subtotal × tasa, Total =
// Subtotal + Tax. Los totales se calculan al crear/actualizar, no se
// re-derivan en lectura.
type Invoice struct {
	ID         string
	CompanyID  string
	CustomerID string
	Number     string // suministrado por el caller; único por empresa
	Date       time.Time
	DueDate    time.Time
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	Status     string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

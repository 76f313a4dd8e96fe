package billing

import (
	"context"

	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// BillingTxRunner ejecuta una función con un InvoiceRepository atado a una
// transacción. Cabecera y líneas de una factura se persisten atómicamente;
// un error en cualquier punto hace rollback de todo.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator puerto de la representación gráfica de la factura.
// Lo implementa infrastructure/pdf (Maroto v2).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		company *entity.Company,
		customer *entity.Customer,
		items []*entity.InvoiceItem,
	) ([]byte, error)
}

package repository

import "github.com/tu-usuario/billing-pro/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	// DeleteItemsByInvoiceID elimina todas las líneas de la factura; se usa
	// al reemplazar líneas en un update y antes de borrar la cabecera.
	DeleteItemsByInvoiceID(invoiceID string) error
	Delete(id string) error
}

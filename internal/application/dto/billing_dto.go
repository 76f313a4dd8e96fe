package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest línea de factura (producto, cantidad, precio unitario).
// Si UnitPrice va ausente (nil) se toma el precio de catálogo del producto;
// un cero explícito se respeta (línea de cortesía). Si Description va vacía
// se toma el nombre del producto.
type InvoiceItemRequest struct {
	ProductID   string           `json:"product_id"`
	Description string           `json:"description,omitempty"`
	Quantity    int64            `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id"`
	Number     string               `json:"number"`
	Date       string               `json:"date,omitempty"`     // YYYY-MM-DD; vacío = hoy
	DueDate    string               `json:"due_date,omitempty"` // YYYY-MM-DD
	Notes      string               `json:"notes,omitempty"`
	Items      []InvoiceItemRequest `json:"items"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id.
// Items nil deja las líneas (y totales) como están; Items no-nil las reemplaza
// completas y recalcula totales.
type UpdateInvoiceRequest struct {
	Status  *string              `json:"status,omitempty"`
	DueDate *string              `json:"due_date,omitempty"`
	Notes   *string              `json:"notes,omitempty"`
	Items   []InvoiceItemRequest `json:"items,omitempty"`
}

// InvoiceResponse factura con líneas.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	CompanyID    string                `json:"company_id"`
	CustomerID   string                `json:"customer_id"`
	CustomerName string                `json:"customer_name,omitempty"`
	Number       string                `json:"number"`
	Date         string                `json:"date"`
	DueDate      string                `json:"due_date,omitempty"`
	Subtotal     decimal.Decimal       `json:"subtotal"`
	Tax          decimal.Decimal       `json:"tax"`
	Total        decimal.Decimal       `json:"total"`
	Status       string                `json:"status"`
	Notes        string                `json:"notes,omitempty"`
	Items        []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse línea en la respuesta.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

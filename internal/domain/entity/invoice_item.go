package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de una factura. Es un snapshot del
// producto al momento de facturar (descripción y precio copiados); su ciclo
// de vida está atado 1:N a la factura y se elimina con ella.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductID   string
	Description string
	Quantity    int64 // entero positivo
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // Quantity × UnitPrice
}

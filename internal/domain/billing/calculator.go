// Package billing contiene el cálculo puro de totales de factura.
// Separado de los casos de uso para poder testearlo sin repositorios.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/domain"
)

// LineInput línea de entrada para el cálculo (producto, cantidad, precio unitario).
type LineInput struct {
	ProductID   string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// Line línea calculada: Total = Quantity × UnitPrice.
type Line struct {
	ProductID   string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// Totals resultado del cálculo de una factura.
// Subtotal = Σ líneas, Tax = Subtotal × tasa, Total = Subtotal + Tax.
type Totals struct {
	Lines    []Line
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Compute valida las líneas y calcula los totales con aritmética decimal exacta.
//
// Reglas:
//   - cero líneas -> ErrEmptyInvoice (se rechaza antes de cualquier persistencia)
//   - Quantity <= 0 o UnitPrice < 0 -> ErrInvalidLineItem
//   - taxRate es la tasa plana configurada (ej. 0.08); el TaxRate por
//     producto no participa en la fórmula de totales.
func Compute(lines []LineInput, taxRate decimal.Decimal) (*Totals, error) {
	if len(lines) == 0 {
		return nil, domain.ErrEmptyInvoice
	}
	if taxRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	out := &Totals{Lines: make([]Line, 0, len(lines))}
	subtotal := decimal.Zero
	for _, in := range lines {
		if in.Quantity <= 0 || in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidLineItem
		}
		lineTotal := decimal.NewFromInt(in.Quantity).Mul(in.UnitPrice)
		out.Lines = append(out.Lines, Line{
			ProductID:   in.ProductID,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Total:       lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	out.Subtotal = subtotal
	out.Tax = subtotal.Mul(taxRate)
	out.Total = out.Subtotal.Add(out.Tax)
	return out, nil
}

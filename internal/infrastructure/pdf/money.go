package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// moneyPrinter agrega separadores de miles según la localización.
var moneyPrinter = message.NewPrinter(language.English)

// formatMoney formatea un importe con dos decimales y separador de miles.
// Ej: 1234567.5 → "1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return moneyPrinter.Sprintf("%.2f", f)
}

// formatPercent formatea un porcentaje a un decimal. Ej: 62.5 → "62.5%"
func formatPercent(d decimal.Decimal) string {
	return d.Round(1).String() + "%"
}

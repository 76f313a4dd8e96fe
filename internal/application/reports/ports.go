package reports

import "context"

// SalesReportRenderer convierte el reporte en bytes de un formato concreto.
// Hay dos implementaciones: infrastructure/pdf (Maroto v2) e
// infrastructure/spreadsheet (SpreadsheetML).
type SalesReportRenderer interface {
	RenderSalesReport(ctx context.Context, report *SalesReport) ([]byte, error)
}

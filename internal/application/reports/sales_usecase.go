// Package reports contiene el caso de uso del reporte de ventas por cliente
// y sus puertos de render (PDF y hoja de cálculo).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/billing-pro/internal/application/access"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// Formatos de salida soportados por GET /api/reports/sales.
const (
	FormatPDF = "pdf"
	FormatXML = "xml"
)

var hundred = decimal.NewFromInt(100)

// SalesReportLine fila del reporte: un cliente con sus agregados.
type SalesReportLine struct {
	CustomerName string
	InvoiceCount int64
	TotalRevenue decimal.Decimal
	PaidRevenue  decimal.Decimal
	// CollectionRate = PaidRevenue / TotalRevenue * 100, a un decimal.
	// 0 cuando TotalRevenue es cero.
	CollectionRate decimal.Decimal
}

// SalesReport modelo que consumen los renderers.
type SalesReport struct {
	CompanyName    string
	GeneratedAt    time.Time
	Lines          []SalesReportLine
	TotalInvoices  int64
	TotalRevenue   decimal.Decimal
	PaidRevenue    decimal.Decimal
	CollectionRate decimal.Decimal
}

// SalesReportUseCase arma el reporte de ventas y lo renderiza en el formato
// pedido.
type SalesReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	companyRepo   repository.CompanyRepository
	pdfRenderer   SalesReportRenderer
	sheetRenderer SalesReportRenderer
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(
	analyticsRepo repository.AnalyticsRepository,
	companyRepo repository.CompanyRepository,
	pdfRenderer SalesReportRenderer,
	sheetRenderer SalesReportRenderer,
) *SalesReportUseCase {
	return &SalesReportUseCase{
		analyticsRepo: analyticsRepo,
		companyRepo:   companyRepo,
		pdfRenderer:   pdfRenderer,
		sheetRenderer: sheetRenderer,
	}
}

// Generate produce el reporte en el formato indicado.
//
// companyID vacío resuelve a la empresa del token; un Super Admin puede
// pedir cualquier empresa. Formatos desconocidos devuelven ErrInvalidInput.
func (uc *SalesReportUseCase) Generate(
	ctx context.Context,
	p access.Principal,
	companyID string,
	format string,
) (data []byte, filename string, contentType string, err error) {
	if companyID == "" {
		companyID = p.CompanyID
	}
	if !p.CanAccessCompany(companyID) {
		return nil, "", "", domain.ErrForbidden
	}
	if companyID == "" {
		return nil, "", "", domain.ErrInvalidInput
	}

	var renderer SalesReportRenderer
	var ext, mime string
	switch format {
	case FormatPDF, "":
		renderer, ext, mime = uc.pdfRenderer, "pdf", "application/pdf"
	case FormatXML:
		renderer, ext, mime = uc.sheetRenderer, "xml", "application/vnd.ms-excel"
	default:
		return nil, "", "", domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", "", fmt.Errorf("reporte: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", "", domain.ErrNotFound
	}

	rows, err := uc.analyticsRepo.GetCustomerSales(ctx, companyID)
	if err != nil {
		return nil, "", "", fmt.Errorf("reporte: ventas por cliente: %w", err)
	}

	report := buildSalesReport(company.Name, rows)
	data, err = renderer.RenderSalesReport(ctx, report)
	if err != nil {
		return nil, "", "", fmt.Errorf("reporte: render %s: %w", format, err)
	}

	filename = fmt.Sprintf("sales_report_%s.%s", report.GeneratedAt.Format("20060102"), ext)
	return data, filename, mime, nil
}

// buildSalesReport convierte las filas del repositorio en el modelo del
// reporte, con tasa de cobro por cliente y totales globales.
func buildSalesReport(companyName string, rows []repository.CustomerSalesRow) *SalesReport {
	report := &SalesReport{
		CompanyName: companyName,
		GeneratedAt: time.Now(),
		Lines:       make([]SalesReportLine, 0, len(rows)),
	}
	for _, r := range rows {
		report.Lines = append(report.Lines, SalesReportLine{
			CustomerName:   r.CustomerName,
			InvoiceCount:   r.InvoiceCount,
			TotalRevenue:   r.TotalRevenue.Round(2),
			PaidRevenue:    r.PaidRevenue.Round(2),
			CollectionRate: collectionRate(r.PaidRevenue, r.TotalRevenue),
		})
		report.TotalInvoices += r.InvoiceCount
		report.TotalRevenue = report.TotalRevenue.Add(r.TotalRevenue)
		report.PaidRevenue = report.PaidRevenue.Add(r.PaidRevenue)
	}
	report.TotalRevenue = report.TotalRevenue.Round(2)
	report.PaidRevenue = report.PaidRevenue.Round(2)
	report.CollectionRate = collectionRate(report.PaidRevenue, report.TotalRevenue)
	return report
}

// collectionRate calcula paid/total*100 a un decimal. Total cero da 0, nunca
// divide por cero.
func collectionRate(paid, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return paid.Div(total).Mul(hundred).Round(1)
}

package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/billing-pro/internal/application/reports"
)

var _ reports.SalesReportRenderer = (*SalesReportPDFRenderer)(nil)

// SalesReportPDFRenderer implementa reports.SalesReportRenderer con Maroto v2.
// Una fila por cliente, totales globales al pie.
type SalesReportPDFRenderer struct {
	currency string
}

// NewSalesReportPDFRenderer construye el renderer.
func NewSalesReportPDFRenderer(currency string) *SalesReportPDFRenderer {
	return &SalesReportPDFRenderer{currency: currency}
}

// RenderSalesReport genera el PDF del reporte y devuelve sus bytes.
func (r *SalesReportPDFRenderer) RenderSalesReport(_ context.Context, report *reports.SalesReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		WithAuthor(report.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(reportHeaderRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(reportTableHeaderRow())
	for _, rw := range reportLineRows(report) {
		m.AddRows(rw)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(r.reportTotalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func reportHeaderRow(report *reports.SalesReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE VENTAS POR CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(report.CompanyName, props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func reportTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cliente", 4, align.Left),
		h("Facturas", 2, align.Center),
		h("Facturado", 2, align.Right),
		h("Cobrado", 2, align.Right),
		h("% Cobro", 2, align.Right),
	)
}

func reportLineRows(report *reports.SalesReport) []core.Row {
	result := make([]core.Row, 0, len(report.Lines))
	for i, l := range report.Lines {
		rw := row.New(7).Add(
			col.New(4).Add(text.New(l.CustomerName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", l.InvoiceCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(l.TotalRevenue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(l.PaidRevenue), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatPercent(l.CollectionRate), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if i%2 == 1 {
			rw.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, rw)
	}
	return result
}

func (r *SalesReportPDFRenderer) reportTotalsRow(report *reports.SalesReport) core.Row {
	bold := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(9).Add(
		bold("TOTAL ("+r.currency+")", 4, align.Left),
		bold(fmt.Sprintf("%d", report.TotalInvoices), 2, align.Center),
		bold(formatMoney(report.TotalRevenue), 2, align.Right),
		bold(formatMoney(report.PaidRevenue), 2, align.Right),
		bold(formatPercent(report.CollectionRate), 2, align.Right),
	)
}

// Package spreadsheet genera el reporte de ventas como hoja de cálculo en
// formato SpreadsheetML (Excel 2003 XML), legible por Excel y LibreOffice.
package spreadsheet

import (
	"context"
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/billing-pro/internal/application/reports"
)

const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	nsOffice      = "urn:schemas-microsoft-com:office:office"
	nsExcel       = "urn:schemas-microsoft-com:office:excel"
)

var _ reports.SalesReportRenderer = (*SalesReportXMLRenderer)(nil)

// SalesReportXMLRenderer implementa reports.SalesReportRenderer emitiendo
// un Workbook SpreadsheetML con una hoja "Ventas".
type SalesReportXMLRenderer struct {
	currency string
}

// NewSalesReportXMLRenderer construye el renderer.
func NewSalesReportXMLRenderer(currency string) *SalesReportXMLRenderer {
	return &SalesReportXMLRenderer{currency: currency}
}

// RenderSalesReport genera el documento y devuelve sus bytes.
func (r *SalesReportXMLRenderer) RenderSalesReport(_ context.Context, report *reports.SalesReport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	workbook := doc.CreateElement("Workbook")
	workbook.CreateAttr("xmlns", nsSpreadsheet)
	workbook.CreateAttr("xmlns:o", nsOffice)
	workbook.CreateAttr("xmlns:x", nsExcel)
	workbook.CreateAttr("xmlns:ss", nsSpreadsheet)

	r.addStyles(workbook)

	worksheet := workbook.CreateElement("Worksheet")
	worksheet.CreateAttr("ss:Name", "Ventas")
	table := worksheet.CreateElement("Table")

	// Título y metadatos
	addRow(table, "Title",
		cellString("Reporte de Ventas por Cliente"),
	)
	addRow(table, "",
		cellString("Empresa: "+report.CompanyName),
	)
	addRow(table, "",
		cellString("Generado: "+report.GeneratedAt.Format("2006-01-02 15:04")),
	)
	addRow(table, "") // fila vacía

	// Cabecera de la tabla
	addRow(table, "Header",
		cellString("Cliente"),
		cellString("Facturas"),
		cellString("Facturado ("+r.currency+")"),
		cellString("Cobrado ("+r.currency+")"),
		cellString("% Cobro"),
	)

	// Una fila por cliente
	for _, l := range report.Lines {
		addRow(table, "",
			cellString(l.CustomerName),
			cellNumber(decimal.NewFromInt(l.InvoiceCount)),
			cellNumber(l.TotalRevenue),
			cellNumber(l.PaidRevenue),
			cellNumber(l.CollectionRate),
		)
	}

	// Totales
	addRow(table, "Total",
		cellString("TOTAL"),
		cellNumber(decimal.NewFromInt(report.TotalInvoices)),
		cellNumber(report.TotalRevenue),
		cellNumber(report.PaidRevenue),
		cellNumber(report.CollectionRate),
	)

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: serializar workbook: %w", err)
	}
	return out, nil
}

// addStyles registra los estilos nombrados que usan las filas.
func (r *SalesReportXMLRenderer) addStyles(workbook *etree.Element) {
	styles := workbook.CreateElement("Styles")

	title := styles.CreateElement("Style")
	title.CreateAttr("ss:ID", "Title")
	titleFont := title.CreateElement("Font")
	titleFont.CreateAttr("ss:Bold", "1")
	titleFont.CreateAttr("ss:Size", "14")

	header := styles.CreateElement("Style")
	header.CreateAttr("ss:ID", "Header")
	headerFont := header.CreateElement("Font")
	headerFont.CreateAttr("ss:Bold", "1")
	interior := header.CreateElement("Interior")
	interior.CreateAttr("ss:Color", "#DCE6F1")
	interior.CreateAttr("ss:Pattern", "Solid")

	total := styles.CreateElement("Style")
	total.CreateAttr("ss:ID", "Total")
	totalFont := total.CreateElement("Font")
	totalFont.CreateAttr("ss:Bold", "1")
}

// cell describe una celda tipada pendiente de materializar en el árbol.
type cell struct {
	typ  string
	data string
}

func cellString(s string) cell { return cell{typ: "String", data: s} }

func cellNumber(d decimal.Decimal) cell { return cell{typ: "Number", data: d.String()} }

// addRow materializa una fila con el estilo dado ("" = sin estilo).
func addRow(table *etree.Element, styleID string, cells ...cell) {
	rowEl := table.CreateElement("Row")
	if styleID != "" {
		rowEl.CreateAttr("ss:StyleID", styleID)
	}
	for _, c := range cells {
		cellEl := rowEl.CreateElement("Cell")
		data := cellEl.CreateElement("Data")
		data.CreateAttr("ss:Type", c.typ)
		data.SetText(c.data)
	}
}

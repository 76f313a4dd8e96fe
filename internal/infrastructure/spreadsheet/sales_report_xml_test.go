package spreadsheet

import (
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/application/reports"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRenderSalesReport_WorkbookValido(t *testing.T) {
	report := &reports.SalesReport{
		CompanyName: "Mi Empresa",
		GeneratedAt: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		Lines: []reports.SalesReportLine{
			{CustomerName: "ACME", InvoiceCount: 3, TotalRevenue: dec("300.00"), PaidRevenue: dec("150.00"), CollectionRate: dec("50")},
			{CustomerName: "Globex", InvoiceCount: 1, TotalRevenue: dec("100.00"), PaidRevenue: dec("100.00"), CollectionRate: dec("100")},
		},
		TotalInvoices:  4,
		TotalRevenue:   dec("400.00"),
		PaidRevenue:    dec("250.00"),
		CollectionRate: dec("62.5"),
	}

	out, err := NewSalesReportXMLRenderer("USD").RenderSalesReport(context.Background(), report)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// El resultado debe ser XML parseable con la estructura SpreadsheetML.
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	workbook := doc.SelectElement("Workbook")
	require.NotNil(t, workbook, "falta el elemento Workbook")

	worksheet := workbook.SelectElement("Worksheet")
	require.NotNil(t, worksheet)
	assert.Equal(t, "Ventas", worksheet.SelectAttrValue("ss:Name", ""))

	table := worksheet.SelectElement("Table")
	require.NotNil(t, table)

	// 4 filas de preámbulo + cabecera + 2 clientes + totales
	rows := table.SelectElements("Row")
	require.Len(t, rows, 8)

	// La fila de totales cierra el documento con los agregados globales.
	totalRow := rows[len(rows)-1]
	cells := totalRow.SelectElements("Cell")
	require.Len(t, cells, 5)
	assert.Equal(t, "TOTAL", cells[0].SelectElement("Data").Text())
	assert.Equal(t, "4", cells[1].SelectElement("Data").Text())
	assert.Equal(t, "400", cells[2].SelectElement("Data").Text())
	assert.Equal(t, "62.5", cells[4].SelectElement("Data").Text())
}

func TestRenderSalesReport_SinClientes(t *testing.T) {
	report := &reports.SalesReport{
		CompanyName: "Mi Empresa",
		GeneratedAt: time.Now(),
	}

	out, err := NewSalesReportXMLRenderer("USD").RenderSalesReport(context.Background(), report)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	table := doc.FindElement("//Worksheet/Table")
	require.NotNil(t, table)
	// Preámbulo + cabecera + totales, sin filas de clientes
	assert.Len(t, table.SelectElements("Row"), 6)
}

package reports

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCollectionRate_TotalCero(t *testing.T) {
	// Cliente sin facturación: 0%, nunca división por cero.
	got := collectionRate(decimal.Zero, decimal.Zero)
	assert.True(t, got.IsZero(), "tasa de cobro con total cero debe ser 0")
}

func TestCollectionRate_UnDecimal(t *testing.T) {
	cases := []struct {
		name  string
		paid  string
		total string
		want  string
	}{
		{"todo cobrado", "100.00", "100.00", "100"},
		{"mitad cobrada", "50.00", "100.00", "50"},
		{"redondeo a un decimal", "1.00", "3.00", "33.3"},
		{"nada cobrado", "0.00", "250.00", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := collectionRate(dec(tc.paid), dec(tc.total))
			assert.True(t, dec(tc.want).Equal(got), "esperado %s, obtenido %s", tc.want, got)
		})
	}
}

func TestBuildSalesReport_Totales(t *testing.T) {
	rows := []repository.CustomerSalesRow{
		{CustomerID: "c1", CustomerName: "ACME", InvoiceCount: 3, TotalRevenue: dec("300.00"), PaidRevenue: dec("150.00")},
		{CustomerID: "c2", CustomerName: "Globex", InvoiceCount: 1, TotalRevenue: dec("100.00"), PaidRevenue: dec("100.00")},
	}

	report := buildSalesReport("Mi Empresa", rows)

	require.Len(t, report.Lines, 2)
	assert.Equal(t, "Mi Empresa", report.CompanyName)
	assert.EqualValues(t, 4, report.TotalInvoices)
	assert.True(t, dec("400.00").Equal(report.TotalRevenue))
	assert.True(t, dec("250.00").Equal(report.PaidRevenue))
	// 250/400 = 62.5%
	assert.True(t, dec("62.5").Equal(report.CollectionRate))

	// Tasa por línea: 150/300 = 50%, 100/100 = 100%
	assert.True(t, dec("50").Equal(report.Lines[0].CollectionRate))
	assert.True(t, dec("100").Equal(report.Lines[1].CollectionRate))
}

func TestBuildSalesReport_SinFilas(t *testing.T) {
	report := buildSalesReport("Mi Empresa", nil)

	assert.Empty(t, report.Lines)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.True(t, report.CollectionRate.IsZero())
}

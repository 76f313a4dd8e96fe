package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/billing"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Caso de referencia: {(q=2, p=10.00), (q=1, p=5.00)} con tasa 0.08
// => subtotal=25.00, tax=2.00, total=27.00.
func TestCompute_CasoReferencia(t *testing.T) {
	totals, err := billing.Compute([]billing.LineInput{
		{ProductID: "p1", Description: "Producto A", Quantity: 2, UnitPrice: dec("10.00")},
		{ProductID: "p2", Description: "Producto B", Quantity: 1, UnitPrice: dec("5.00")},
	}, dec("0.08"))
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(dec("25.00")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(dec("2.00")), "tax = %s", totals.Tax)
	assert.True(t, totals.Total.Equal(dec("27.00")), "total = %s", totals.Total)
}

// Invariantes: total == subtotal + tax y subtotal == Σ líneas, exactos en decimal.
func TestCompute_Invariantes(t *testing.T) {
	lines := []billing.LineInput{
		{ProductID: "a", Quantity: 3, UnitPrice: dec("19.99")},
		{ProductID: "b", Quantity: 7, UnitPrice: dec("0.10")},
		{ProductID: "c", Quantity: 1, UnitPrice: dec("1234.56")},
	}
	totals, err := billing.Compute(lines, dec("0.19"))
	require.NoError(t, err)

	sum := decimal.Zero
	for i, l := range totals.Lines {
		expected := decimal.NewFromInt(lines[i].Quantity).Mul(lines[i].UnitPrice)
		assert.True(t, l.Total.Equal(expected), "línea %d: total = %s", i, l.Total)
		sum = sum.Add(l.Total)
	}
	assert.True(t, totals.Subtotal.Equal(sum))
	assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Tax)))
}

func TestCompute_PrecioUnitarioCero_EsValido(t *testing.T) {
	totals, err := billing.Compute([]billing.LineInput{
		{ProductID: "gratis", Quantity: 5, UnitPrice: decimal.Zero},
	}, dec("0.08"))
	require.NoError(t, err)
	assert.True(t, totals.Total.IsZero())
}

func TestCompute_SinLineas_RetornaErrEmptyInvoice(t *testing.T) {
	_, err := billing.Compute(nil, dec("0.08"))
	assert.ErrorIs(t, err, domain.ErrEmptyInvoice)
}

func TestCompute_LineasInvalidas(t *testing.T) {
	cases := []struct {
		name string
		line billing.LineInput
	}{
		{"cantidad cero", billing.LineInput{ProductID: "x", Quantity: 0, UnitPrice: dec("1.00")}},
		{"cantidad negativa", billing.LineInput{ProductID: "x", Quantity: -2, UnitPrice: dec("1.00")}},
		{"precio negativo", billing.LineInput{ProductID: "x", Quantity: 1, UnitPrice: dec("-0.01")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := billing.Compute([]billing.LineInput{tc.line}, dec("0.08"))
			assert.ErrorIs(t, err, domain.ErrInvalidLineItem)
		})
	}
}

func TestCompute_TasaNegativa_RetornaErrInvalidInput(t *testing.T) {
	_, err := billing.Compute([]billing.LineInput{
		{ProductID: "x", Quantity: 1, UnitPrice: dec("1.00")},
	}, dec("-0.08"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

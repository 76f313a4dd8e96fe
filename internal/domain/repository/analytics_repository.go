package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// InvoiceMetrics agregados de facturación de una empresa.
// TotalRevenue excluye facturas canceladas.
type InvoiceMetrics struct {
	TotalRevenue    decimal.Decimal
	PendingInvoices int64
}

// CustomerSalesRow agregado de ventas por cliente para el reporte.
type CustomerSalesRow struct {
	CustomerID   string
	CustomerName string
	InvoiceCount int64
	TotalRevenue decimal.Decimal
	PaidRevenue  decimal.Decimal // Σ total donde status = paid
}

// AnalyticsRepository consultas de solo lectura para dashboard y reportes.
type AnalyticsRepository interface {
	GetInvoiceMetrics(ctx context.Context, companyID string) (*InvoiceMetrics, error)
	CountActiveCustomers(ctx context.Context, companyID string) (int64, error)
	// SumProductsSold suma las cantidades de líneas de facturas no canceladas.
	SumProductsSold(ctx context.Context, companyID string) (int64, error)
	GetCustomerSales(ctx context.Context, companyID string) ([]CustomerSalesRow, error)
}

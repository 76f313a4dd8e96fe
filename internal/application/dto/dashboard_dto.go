package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO resumen para GET /api/dashboard/stats, acotado a la
// empresa del caller.
type DashboardStatsDTO struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	ActiveCustomers int64           `json:"active_customers"`
	PendingInvoices int64           `json:"pending_invoices"`
	ProductsSold    int64           `json:"products_sold"`
}

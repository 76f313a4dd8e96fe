package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para dashboard y reportes.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetInvoiceMetrics devuelve el ingreso total (facturas no canceladas) y el
// número de facturas pendientes de la empresa.
// Usa COALESCE para devolver cero si no hay filas (empresa sin facturación).
func (r *AnalyticsRepo) GetInvoiceMetrics(
	ctx context.Context,
	companyID string,
) (*repository.InvoiceMetrics, error) {
	const query = `
	SELECT
	    COALESCE(SUM(total) FILTER (WHERE status <> 'cancelled'), 0) AS total_revenue,
	    COUNT(*)            FILTER (WHERE status =  'pending')       AS pending_invoices
	FROM invoices
	WHERE company_id = $1`

	var m repository.InvoiceMetrics
	err := r.pool.QueryRow(ctx, query, companyID).Scan(&m.TotalRevenue, &m.PendingInvoices)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetInvoiceMetrics: %w", err)
	}
	return &m, nil
}

// CountActiveCustomers cuenta los clientes de la empresa con al menos una
// factura no cancelada.
func (r *AnalyticsRepo) CountActiveCustomers(ctx context.Context, companyID string) (int64, error) {
	const query = `
	SELECT COUNT(DISTINCT customer_id)
	FROM invoices
	WHERE company_id = $1 AND status <> 'cancelled'`

	var n int64
	if err := r.pool.QueryRow(ctx, query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountActiveCustomers: %w", err)
	}
	return n, nil
}

// SumProductsSold suma las cantidades de líneas de facturas no canceladas.
func (r *AnalyticsRepo) SumProductsSold(ctx context.Context, companyID string) (int64, error) {
	const query = `
	SELECT COALESCE(SUM(it.quantity), 0)::bigint
	FROM invoice_items it
	JOIN invoices i ON i.id = it.invoice_id
	WHERE i.company_id = $1 AND i.status <> 'cancelled'`

	var n int64
	if err := r.pool.QueryRow(ctx, query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.SumProductsSold: %w", err)
	}
	return n, nil
}

// GetCustomerSales agrupa la facturación por cliente para el reporte de
// ventas. Excluye facturas canceladas; PaidRevenue solo suma las pagadas.
func (r *AnalyticsRepo) GetCustomerSales(
	ctx context.Context,
	companyID string,
) ([]repository.CustomerSalesRow, error) {
	const query = `
	SELECT
	    c.id                                                          AS customer_id,
	    c.name                                                        AS customer_name,
	    COUNT(i.id)                                                   AS invoice_count,
	    COALESCE(SUM(i.total), 0)                                     AS total_revenue,
	    COALESCE(SUM(i.total) FILTER (WHERE i.status = 'paid'), 0)    AS paid_revenue
	FROM customers c
	JOIN invoices i ON i.customer_id = c.id AND i.status <> 'cancelled'
	WHERE c.company_id = $1
	GROUP BY c.id, c.name
	ORDER BY total_revenue DESC`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetCustomerSales: %w", err)
	}
	defer rows.Close()

	var results []repository.CustomerSalesRow
	for rows.Next() {
		var row repository.CustomerSalesRow
		if err := rows.Scan(
			&row.CustomerID,
			&row.CustomerName,
			&row.InvoiceCount,
			&row.TotalRevenue,
			&row.PaidRevenue,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetCustomerSales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// Package analytics contiene el caso de uso del dashboard de facturación.
package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/billing-pro/internal/application/access"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// DashboardUseCase genera las estadísticas agregadas de la empresa.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas de facturación; delega todo en el
// repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats construye el DashboardStatsDTO para la empresa objetivo.
//
// companyID vacío resuelve a la empresa del token; un Super Admin puede
// pedir cualquier empresa.
//
// Tres llamadas en paralelo:
//  1. GetInvoiceMetrics     → TotalRevenue + PendingInvoices
//  2. CountActiveCustomers  → ActiveCustomers
//  3. SumProductsSold       → ProductsSold
func (uc *DashboardUseCase) GetStats(
	ctx context.Context,
	p access.Principal,
	companyID string,
) (*dto.DashboardStatsDTO, error) {
	if companyID == "" {
		companyID = p.CompanyID
	}
	if !p.CanAccessCompany(companyID) {
		return nil, domain.ErrForbidden
	}
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}

	// ── Goroutines para paralelizar las 3 consultas DB ────────────────────────
	type metricsResult struct {
		metrics *repository.InvoiceMetrics
		err     error
	}
	type countResult struct {
		n   int64
		err error
	}

	metricsCh := make(chan metricsResult, 1)
	customersCh := make(chan countResult, 1)
	soldCh := make(chan countResult, 1)

	go func() {
		m, err := uc.analyticsRepo.GetInvoiceMetrics(ctx, companyID)
		metricsCh <- metricsResult{m, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountActiveCustomers(ctx, companyID)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.SumProductsSold(ctx, companyID)
		soldCh <- countResult{n, err}
	}()

	metrics := <-metricsCh
	customers := <-customersCh
	sold := <-soldCh

	if metrics.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de facturas: %w", metrics.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: clientes activos: %w", customers.err)
	}
	if sold.err != nil {
		return nil, fmt.Errorf("dashboard: productos vendidos: %w", sold.err)
	}

	return &dto.DashboardStatsDTO{
		TotalRevenue:    metrics.metrics.TotalRevenue.Round(2),
		ActiveCustomers: customers.n,
		PendingInvoices: metrics.metrics.PendingInvoices,
		ProductsSold:    sold.n,
	}, nil
}

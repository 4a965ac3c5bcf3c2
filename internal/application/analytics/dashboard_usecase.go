// Package analytics contiene los casos de uso de reportes y el resumen del
// dashboard de inventario.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

const (
	dashboardTopProducts  = 5  // productos en el widget de más movidos
	dashboardWindowInDays = 30 // ventana de actividad reciente
)

// DashboardUseCase genera el resumen del estado del inventario.
//
// Fuente de datos: AnalyticsRepository más los repositorios de alertas y
// órdenes. No accede a tablas directamente; delega todo en los repositorios.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	alertRepo     repository.AlertRepository
	poRepo        repository.PurchaseOrderRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	alertRepo repository.AlertRepository,
	poRepo repository.PurchaseOrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		alertRepo:     alertRepo,
		poRepo:        poRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo contra la DB:
//  1. GetInventorySummary        → agregados de stock y vencimientos
//  2. GetTopMovedProducts        → productos con más salidas (30 días)
//  3. CountMovementsByType       → actividad por tipo de movimiento
//  4. GetStockByCategory         → desglose del stock por categoría
//
// Las alertas activas y las órdenes pendientes se consultan después; son
// lecturas puntuales baratas.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type summaryResult struct {
		summary *repository.InventorySummary
		err     error
	}
	type topResult struct {
		top []repository.TopMovedProduct
		err error
	}
	type countResult struct {
		counts map[string]int
		err    error
	}
	type categoryResult struct {
		categories []repository.CategoryStock
		err        error
	}

	summaryCh := make(chan summaryResult, 1)
	topCh := make(chan topResult, 1)
	countCh := make(chan countResult, 1)
	categoryCh := make(chan categoryResult, 1)

	go func() {
		s, err := uc.analyticsRepo.GetInventorySummary(ctx)
		summaryCh <- summaryResult{s, err}
	}()
	go func() {
		top, err := uc.analyticsRepo.GetTopMovedProducts(ctx, dashboardWindowInDays, dashboardTopProducts)
		topCh <- topResult{top, err}
	}()
	go func() {
		counts, err := uc.analyticsRepo.CountMovementsByType(ctx, dashboardWindowInDays)
		countCh <- countResult{counts, err}
	}()
	go func() {
		categories, err := uc.analyticsRepo.GetStockByCategory(ctx)
		categoryCh <- categoryResult{categories, err}
	}()

	summary := <-summaryCh
	top := <-topCh
	counts := <-countCh
	categories := <-categoryCh

	if summary.err != nil {
		return nil, fmt.Errorf("dashboard: agregados de inventario: %w", summary.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: productos más movidos: %w", top.err)
	}
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de movimientos: %w", counts.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: stock por categoría: %w", categories.err)
	}

	activeAlerts, err := uc.alertRepo.CountActiveBySeverity()
	if err != nil {
		return nil, fmt.Errorf("dashboard: alertas activas: %w", err)
	}
	pendingOrders, err := uc.poRepo.CountByStatus(entity.PurchaseOrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("dashboard: órdenes pendientes: %w", err)
	}

	topDTO := make([]dto.TopMovedProductDTO, len(top.top))
	for i, p := range top.top {
		topDTO[i] = dto.TopMovedProductDTO{
			ProductID:    p.ProductID,
			Code:         p.Code,
			Name:         p.Name,
			UnitsMoved:   p.UnitsMoved,
			CurrentStock: p.StockActual,
		}
	}

	categoryDTO := make([]dto.CategoryStockDTO, len(categories.categories))
	for i, c := range categories.categories {
		categoryDTO[i] = dto.CategoryStockDTO{
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			Products:     c.Products,
			StockUnits:   c.StockUnits,
			StockValue:   c.StockValue.Round(2),
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:    summary.summary.TotalProducts,
		TotalStockUnits:  summary.summary.TotalStockUnits,
		TotalStockValue:  summary.summary.TotalStockValue.Round(2),
		LowStockCount:    summary.summary.LowStockCount,
		OutOfStockCount:  summary.summary.OutOfStockCount,
		ExpiringCount:    summary.summary.ExpiringCount,
		ExpiredCount:     summary.summary.ExpiredCount,
		ActiveAlerts:     activeAlerts,
		PendingOrders:    pendingOrders,
		MovementsByType:  counts.counts,
		TopMovedProducts: topDTO,
		StockByCategory:  categoryDTO,
	}, nil
}

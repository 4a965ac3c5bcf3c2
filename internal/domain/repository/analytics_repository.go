package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// InventorySummary resultado crudo de los agregados de inventario del
// dashboard. Lo produce la DB; el use case lo convierte en DTO.
type InventorySummary struct {
	TotalProducts   int
	TotalStockUnits int
	TotalStockValue decimal.Decimal // sum(stock * cost) de productos activos
	LowStockCount   int             // 0 < stock <= min_stock
	OutOfStockCount int
	ExpiringCount   int // vencen en los próximos 30 días
	ExpiredCount    int
}

// TopMovedProduct resultado crudo de los productos con más salidas en un
// período.
type TopMovedProduct struct {
	ProductID   string
	Code        string
	Name        string
	UnitsMoved  int
	StockActual int
}

// CategoryStock resultado crudo del stock agregado por categoría.
type CategoryStock struct {
	CategoryID   string // vacío para productos sin categoría
	CategoryName string
	Products     int
	StockUnits   int
	StockValue   decimal.Decimal // sum(stock * cost) de la categoría
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetInventorySummary devuelve los agregados de inventario. Usa COALESCE
	// para devolver cero cuando el catálogo está vacío.
	GetInventorySummary(ctx context.Context) (*InventorySummary, error)

	// GetTopMovedProducts devuelve los `limit` productos con más unidades de
	// salida en los últimos `days` días, ordenados de mayor a menor.
	GetTopMovedProducts(ctx context.Context, days, limit int) ([]TopMovedProduct, error)

	// CountMovementsByType devuelve cuántos movimientos de cada tipo se
	// registraron en los últimos `days` días.
	CountMovementsByType(ctx context.Context, days int) (map[string]int, error)

	// GetStockByCategory devuelve el stock agregado por categoría de los
	// productos activos, de mayor a menor cantidad de unidades. Los productos
	// sin categoría se agrupan bajo "Sin categoría".
	GetStockByCategory(ctx context.Context) ([]CategoryStock, error)
}

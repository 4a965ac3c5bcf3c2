package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del estado actual del inventario más actividad reciente.
type DashboardSummaryDTO struct {
	TotalProducts   int             `json:"total_products"`
	TotalStockUnits int             `json:"total_stock_units"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"` // sum(stock * cost)
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	ExpiringCount   int             `json:"expiring_count"` // próximos 30 días
	ExpiredCount    int             `json:"expired_count"`

	ActiveAlerts    map[string]int `json:"active_alerts"`    // por severidad
	PendingOrders   int            `json:"pending_orders"`   // órdenes en pending
	MovementsByType map[string]int `json:"movements_by_type"` // últimos 30 días

	TopMovedProducts []TopMovedProductDTO `json:"top_moved_products"`
	StockByCategory  []CategoryStockDTO   `json:"stock_by_category"`
}

// CategoryStockDTO stock agregado de una categoría dentro del dashboard.
type CategoryStockDTO struct {
	CategoryID   string          `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name"`
	Products     int             `json:"products"`
	StockUnits   int             `json:"stock_units"`
	StockValue   decimal.Decimal `json:"stock_value"`
}

// TopMovedProductDTO producto con más salidas en el período del dashboard.
type TopMovedProductDTO struct {
	ProductID    string `json:"product_id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	UnitsMoved   int    `json:"units_moved"`
	CurrentStock int    `json:"current_stock"`
}

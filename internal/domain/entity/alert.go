package entity

import "time"

// Tipos de alerta de inventario.
const (
	AlertTypeLowStock             = "low_stock"
	AlertTypeOutOfStock           = "out_of_stock"
	AlertTypeExpiringSoon         = "expiring_soon"
	AlertTypeExpired              = "expired"
	AlertTypePurchaseOrderPending = "purchase_order_pending"
)

// Severidades de alerta.
const (
	AlertSeverityInfo     = "info"
	AlertSeverityWarning  = "warning"
	AlertSeverityCritical = "critical"
)

// Alert representa una condición detectada sobre un producto.
// Se crea sin resolver; la resolución es siempre una acción explícita de un
// administrador (el evaluador no auto-resuelve alertas cuando la condición
// desaparece; ver DESIGN.md).
type Alert struct {
	ID         string
	ProductID  string
	Type       string
	Severity   string
	Message    string
	IsResolved bool
	ResolvedAt *time.Time
	ResolvedBy string // UserID del admin que la resolvió
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

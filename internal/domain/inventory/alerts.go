package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// Condition es una condición de alerta detectada para un producto.
// Severity es una de: info, warning, critical.
type Condition struct {
	Type     string
	Severity string
	Message  string
}

// Días de anticipación para considerar un producto próximo a vencer.
const ExpiringSoonDays = 30

// EvaluateProduct evalúa las condiciones de alerta de un producto de forma
// pura (sin tocar almacenamiento). Reglas:
//
//	stock == 0                    → out_of_stock (critical)
//	0 < stock <= minStock         → low_stock (warning); out_of_stock la excluye
//	vencido                       → expired (critical)
//	vence en <= ExpiringSoonDays  → expiring_soon (warning)
//
// Las condiciones de stock y de vencimiento son independientes: un producto
// puede tener ambas a la vez.
func EvaluateProduct(p *entity.Product, now time.Time) []Condition {
	var conds []Condition

	if p.Stock == 0 {
		conds = append(conds, Condition{
			Type:     entity.AlertTypeOutOfStock,
			Severity: entity.AlertSeverityCritical,
			Message:  fmt.Sprintf("Producto %s (%s) sin stock", p.Name, p.Code),
		})
	} else if p.MinStock > 0 && p.Stock <= p.MinStock {
		conds = append(conds, Condition{
			Type:     entity.AlertTypeLowStock,
			Severity: entity.AlertSeverityWarning,
			Message:  fmt.Sprintf("Producto %s (%s) con stock bajo: %d (mínimo %d)", p.Name, p.Code, p.Stock, p.MinStock),
		})
	}

	if days, ok := p.DaysUntilExpiration(now); ok {
		if days <= 0 {
			conds = append(conds, Condition{
				Type:     entity.AlertTypeExpired,
				Severity: entity.AlertSeverityCritical,
				Message:  fmt.Sprintf("Producto %s (%s) vencido el %s", p.Name, p.Code, p.ExpirationDate.Format("2006-01-02")),
			})
		} else if days <= ExpiringSoonDays {
			conds = append(conds, Condition{
				Type:     entity.AlertTypeExpiringSoon,
				Severity: entity.AlertSeverityWarning,
				Message:  fmt.Sprintf("Producto %s (%s) vence en %d días", p.Name, p.Code, days),
			})
		}
	}

	return conds
}

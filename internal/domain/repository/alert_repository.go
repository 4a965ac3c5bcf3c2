package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// AlertRepository define el puerto de persistencia para alertas (DIP).
type AlertRepository interface {
	Create(alert *entity.Alert) error
	GetByID(id string) (*entity.Alert, error)
	Update(alert *entity.Alert) error
	// ExistsActive indica si ya existe una alerta sin resolver del mismo tipo
	// para el producto. Garantiza la idempotencia de la evaluación: reevaluar
	// una condición vigente no duplica la alerta.
	ExistsActive(productID, alertType string) (bool, error)
	ListActive(limit, offset int) ([]*entity.Alert, error)
	ListByProduct(productID string) ([]*entity.Alert, error)
	CountActiveBySeverity() (map[string]int, error)
}

package repository

import (
	"time"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// MovementFilter acota el listado global de movimientos.
type MovementFilter struct {
	ProductID string
	UserID    string
	Type      string
	From      *time.Time
	To        *time.Time
}

// StockMovementRepository define el puerto de persistencia para el kardex (DIP).
// El kardex es un libro inmutable: solo se insertan filas, nunca se actualizan
// ni se borran.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// ListByProduct devuelve el kardex de un producto en orden cronológico
	// descendente.
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	List(filter MovementFilter, limit, offset int) ([]*entity.StockMovement, error)
	// ListRecentExits devuelve las últimas salidas de un producto, más
	// recientes primero. Alimenta el análisis de consumo de la predicción
	// de demanda.
	ListRecentExits(productID string, limit int) ([]*entity.StockMovement, error)
}

package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// ProductFilter acota el listado de productos del catálogo.
// Los campos vacíos no filtran.
type ProductFilter struct {
	CategoryID string
	SupplierID string
	LocationID string
	Status     string
	Search     string // busca por nombre, código o barcode
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo el stock denormalizado del producto.
	// Debe invocarse dentro de la misma transacción que registra el movimiento.
	UpdateStock(productID string, stock int) error
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar mutaciones concurrentes de stock.
	GetForUpdate(id string) (*entity.Product, error)
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	// ListActive devuelve todos los productos activos; lo usa la evaluación
	// global de alertas.
	ListActive() ([]*entity.Product, error)
	Delete(id string) error
}

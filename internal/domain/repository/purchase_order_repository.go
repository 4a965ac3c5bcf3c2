package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de
// compra (DIP). Las órdenes se persisten con sus líneas.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	// GetByID devuelve la orden con sus líneas cargadas.
	GetByID(id string) (*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	UpdateStatus(id, status string) error
	// AddItem inserta una línea nueva en una orden existente.
	AddItem(item *entity.PurchaseOrderItem) error
	// UpdateItemReceived persiste la cantidad recibida de una línea. La
	// recepción lo invoca línea por línea: si el proceso muere a mitad de la
	// recepción, las líneas ya asentadas quedan registradas y el reintento
	// las salta en vez de duplicar sus entradas en el kardex.
	UpdateItemReceived(itemID string, receivedQuantity int) error
	List(status string, supplierID string, limit, offset int) ([]*entity.PurchaseOrder, error)
	CountByStatus(status string) (int, error)
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseOrderStatusDraft     = "draft"
	PurchaseOrderStatusPending   = "pending"
	PurchaseOrderStatusConfirmed = "confirmed"
	PurchaseOrderStatusReceived  = "received"
	PurchaseOrderStatusCancelled = "cancelled"
)

// validTransitions define la máquina de estados de la orden de compra.
// received y cancelled son terminales.
var validTransitions = map[string][]string{
	PurchaseOrderStatusDraft:     {PurchaseOrderStatusPending, PurchaseOrderStatusCancelled},
	PurchaseOrderStatusPending:   {PurchaseOrderStatusConfirmed, PurchaseOrderStatusCancelled},
	PurchaseOrderStatusConfirmed: {PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled},
}

// CanTransition indica si el cambio de estado from → to está permitido.
func CanTransition(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PurchaseOrder es la cabecera de una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID                   string
	OrderNumber          string // único, generado al crear (PO-<epoch ms>)
	SupplierID           string
	Status               string
	TotalAmount          decimal.Decimal
	ExpectedDeliveryDate *time.Time
	ReceivedDate         *time.Time
	Notes                string
	CreatedBy            string // UserID
	Items                []PurchaseOrderItem
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PurchaseOrderItem es una línea de la orden.
type PurchaseOrderItem struct {
	ID               string
	PurchaseOrderID  string
	ProductID        string
	Quantity         int
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal // Quantity × UnitPrice
	ReceivedQuantity int
	CreatedAt        time.Time
}

package entity

import "time"

// Tipos de movimiento del kardex.
const (
	MovementTypeEntry      = "entry"     // entrada por compra o recepción
	MovementTypeExit       = "exit"      // salida por venta o consumo
	MovementTypeAdjustment = "adjustment" // ajuste (delta con signo)
	MovementTypeReturn     = "return"    // devolución de cliente
	MovementTypeWriteOff   = "write_off" // baja por daño, vencimiento o pérdida
)

// StockMovement es un asiento inmutable del kardex: una vez creado nunca se
// modifica ni se borra. PreviousStock y ResultingStock quedan congelados al
// momento del movimiento y siempre cumplen
// ResultingStock = PreviousStock + efecto con signo de (Type, Quantity).
type StockMovement struct {
	ID              string
	ProductID       string
	Type            string // entry, exit, adjustment, return, write_off
	Quantity        int    // positivo; en adjustment lleva signo (delta)
	ReferenceNumber string // factura, remisión, acta de baja...
	Reason          string
	Notes           string
	UserID          string // actor que registró el movimiento
	PurchaseOrderID string // opcional: orden de compra que originó la entrada
	PreviousStock   int
	ResultingStock  int
	CreatedAt       time.Time
}

package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento de inventario.
// Quantity es positiva para entry/exit/return/write_off; para adjustment es
// un delta con signo. ExpectedPreviousStock es opcional: si viene y no
// coincide con el stock real al momento de la transacción, la operación se
// rechaza con 409.
type RegisterMovementRequest struct {
	ProductID             string `json:"product_id" validate:"required,uuid"`
	Type                  string `json:"type" validate:"required,oneof=entry exit adjustment return write_off"`
	Quantity              int    `json:"quantity" validate:"required"`
	Reason                string `json:"reason"`
	Reference             string `json:"reference"`
	ExpectedPreviousStock *int   `json:"expected_previous_stock"`
}

// MovementResponse salida de un movimiento del kardex.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Quantity       int       `json:"quantity"`
	PreviousStock  int       `json:"previous_stock"`
	ResultingStock int       `json:"resulting_stock"`
	Reason         string    `json:"reason,omitempty"`
	Reference      string    `json:"reference,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// KardexResponse kardex de un producto: sus movimientos en orden cronológico
// descendente.
type KardexResponse struct {
	ProductID    string             `json:"product_id"`
	CurrentStock int                `json:"current_stock"`
	Movements    []MovementResponse `json:"movements"`
	Page         PageResponse       `json:"page"`
}

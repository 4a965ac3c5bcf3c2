package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// El stock inicial no se acepta aquí: todo stock entra por un movimiento de
// tipo entry para que el kardex lo registre.
type CreateProductRequest struct {
	Code            string          `json:"code" validate:"required,min=1,max=100"`
	Barcode         string          `json:"barcode"`
	QRCode          string          `json:"qr_code"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description"`
	CategoryID      string          `json:"category_id"`
	SupplierID      string          `json:"supplier_id"`
	LocationID      string          `json:"location_id"`
	Unit            string          `json:"unit" validate:"required"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	MinStock        int             `json:"min_stock" validate:"min=0"`
	MaxStock        int             `json:"max_stock" validate:"min=0"`
	ReorderQuantity int             `json:"reorder_quantity" validate:"min=0"`
	ExpirationDate  *time.Time      `json:"expiration_date"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: el
// stock solo cambia vía movimientos).
type UpdateProductRequest struct {
	Barcode         *string          `json:"barcode"`
	QRCode          *string          `json:"qr_code"`
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description"`
	CategoryID      *string          `json:"category_id"`
	SupplierID      *string          `json:"supplier_id"`
	LocationID      *string          `json:"location_id"`
	Unit            *string          `json:"unit"`
	Price           *decimal.Decimal `json:"price"`
	Cost            *decimal.Decimal `json:"cost"`
	MinStock        *int             `json:"min_stock" validate:"omitempty,min=0"`
	MaxStock        *int             `json:"max_stock" validate:"omitempty,min=0"`
	ReorderQuantity *int             `json:"reorder_quantity" validate:"omitempty,min=0"`
	ExpirationDate  *time.Time       `json:"expiration_date"`
	Status          *string          `json:"status" validate:"omitempty,oneof=active inactive discontinued"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Barcode         string          `json:"barcode,omitempty"`
	QRCode          string          `json:"qr_code,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	CategoryID      string          `json:"category_id,omitempty"`
	SupplierID      string          `json:"supplier_id,omitempty"`
	LocationID      string          `json:"location_id,omitempty"`
	Unit            string          `json:"unit"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	Stock           int             `json:"stock"`
	MinStock        int             `json:"min_stock"`
	MaxStock        int             `json:"max_stock"`
	ReorderQuantity int             `json:"reorder_quantity"`
	ExpirationDate  *time.Time      `json:"expiration_date,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

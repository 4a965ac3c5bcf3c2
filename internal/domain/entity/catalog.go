package entity

import "time"

// Category representa una categoría de productos.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Supplier representa un proveedor.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	City          string
	Country       string
	PaymentTerms  string
	Notes         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Warehouse representa una bodega o almacén físico.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	Capacity  int // 0 = sin límite declarado
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location es una ubicación dentro de una bodega (pasillo, estante, contenedor).
type Location struct {
	ID          string
	WarehouseID string
	Code        string
	Aisle       string
	Shelf       string
	Bin         string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

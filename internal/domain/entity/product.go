package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductStatusActive       = "active"
	ProductStatusDiscontinued = "discontinued"
	ProductStatusInactive     = "inactive"
)

// Product representa un producto o SKU del inventario.
// Stock es la foto actual; la fuente de verdad histórica es el kardex
// (StockMovement): todo cambio de Stock nace de un movimiento.
type Product struct {
	ID              string
	Code            string // código único
	Barcode         string
	QRCode          string
	Name            string
	Description     string
	CategoryID      string
	SupplierID      string
	Unit            string          // unidad de medida (und, kg, lt, caja...)
	Price           decimal.Decimal // precio de venta
	Cost            decimal.Decimal // costo de adquisición
	Stock           int             // stock actual, nunca negativo
	MinStock        int
	MaxStock        int
	ReorderQuantity int
	ExpirationDate  *time.Time // nil si el producto no vence
	Status          string     // active, discontinued, inactive
	LocationID      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DaysUntilExpiration devuelve los días calendario que faltan para el vencimiento.
// Negativo si ya venció. Segundo retorno false si el producto no tiene fecha.
func (p *Product) DaysUntilExpiration(now time.Time) (int, bool) {
	if p.ExpirationDate == nil {
		return 0, false
	}
	diff := p.ExpirationDate.Sub(now)
	days := int(diff.Hours() / 24)
	// Redondeo hacia arriba para fracciones de día futuras, como hace el dashboard
	if diff > 0 && diff != time.Duration(days)*24*time.Hour {
		days++
	}
	return days, true
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Stock es el nivel actual;
// MinStock es el umbral de reposición (0 = sin umbral). WarehouseID es una
// referencia débil: borrar la bodega no borra el producto.
type Product struct {
	ID          string
	SKU         string // código único en todo el inventario
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	MinStock    int
	WarehouseID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto está en o por debajo de su umbral mínimo.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

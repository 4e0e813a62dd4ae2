package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo vendible.
// Stock solo lo modifica el ledger de stock (ventas, devoluciones y recepciones).
type Product struct {
	ID         string
	Name       string
	SKU        string          // único sin distinguir mayúsculas, se guarda en mayúsculas
	Price      decimal.Decimal // precio de venta vigente
	Stock      int
	CategoryID *string
	SupplierID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier proveedor de mercancía. Balance es lo que el negocio le adeuda.
type Supplier struct {
	ID        string
	Name      string
	Contact   string // teléfono normalizado +2547XXXXXXXX
	Email     string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

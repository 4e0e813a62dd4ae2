package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un Credit. open → cleared es la única transición.
const (
	CreditOpen    = "open"
	CreditCleared = "cleared"
)

// Credit saldo pendiente de una venta. Amount siempre es el total de la venta.
type Credit struct {
	ID         string
	SaleID     string
	EmployeeID string
	Amount     decimal.Decimal
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOpen indica si el crédito sigue pendiente.
func (c *Credit) IsOpen() bool {
	return c.Status == CreditOpen
}

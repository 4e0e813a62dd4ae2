package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod medio con el que se pagó una venta.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentMpesa PaymentMethod = "mpesa"
	PaymentCard  PaymentMethod = "card"
)

// Valid indica si el método es uno de los aceptados.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentMpesa, PaymentCard:
		return true
	}
	return false
}

// Sale venta registrada en un día operativo. TotalAmount se deriva de los items.
// Se cumple exactamente uno de: pagada (IsPaid con PaymentMethod) o a crédito (IsCredit con Credit).
// Una venta cuyo crédito fue revocado queda pendiente (ninguno de los dos) hasta que se salda.
type Sale struct {
	ID            string
	Date          time.Time
	TotalAmount   decimal.Decimal
	EmployeeID    string
	PaymentMethod *PaymentMethod
	IsPaid        bool
	IsCredit      bool
	Items         []SaleItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsPending indica una venta sin pagar y sin crédito.
func (s *Sale) IsPending() bool {
	return !s.IsPaid && !s.IsCredit
}

// MarkPaid deja la venta pagada con el método indicado.
func (s *Sale) MarkPaid(pm PaymentMethod) {
	s.IsPaid = true
	s.IsCredit = false
	s.PaymentMethod = &pm
}

// MarkCredit deja la venta a crédito (sin método de pago).
func (s *Sale) MarkCredit() {
	s.IsPaid = false
	s.IsCredit = true
	s.PaymentMethod = nil
}

// MarkPending limpia pago y crédito.
func (s *Sale) MarkPending() {
	s.IsPaid = false
	s.IsCredit = false
	s.PaymentMethod = nil
}

// SaleItem línea de venta. UnitPrice es una foto del precio del producto al momento de vender.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Position  int
}

// Subtotal precio × cantidad.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

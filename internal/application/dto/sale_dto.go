package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea solicitada: producto y cantidad (> 0).
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest entrada para registrar una venta. Exactamente uno de IsCredit o PaymentMethod.
// EmployeeID es opcional; por defecto, el empleado autenticado.
type CreateSaleRequest struct {
	EmployeeID    string            `json:"employee_id"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1"`
	IsCredit      bool              `json:"is_credit"`
	PaymentMethod string            `json:"payment_method" validate:"omitempty,oneof=cash mpesa card"`
}

// UpdateSaleRequest reemplaza los items de la venta. Sin items la venta no cambia.
type UpdateSaleRequest struct {
	Items []SaleItemRequest `json:"items"`
}

// SettleSaleRequest registra el pago de una venta pendiente.
type SettleSaleRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash mpesa card"`
}

// SaleQuery filtros de listado (query string). From/To en YYYY-MM-DD, inclusivos.
type SaleQuery struct {
	From       string `query:"from"`
	To         string `query:"to"`
	EmployeeID string `query:"employee_id"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

// SaleItemResponse línea de una venta con su subtotal.
type SaleItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Position  int             `json:"position"`
}

// SaleResponse salida de una venta. Status: paid, credit o pending.
type SaleResponse struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	EmployeeID    string             `json:"employee_id"`
	PaymentMethod *string            `json:"payment_method"`
	IsPaid        bool               `json:"is_paid"`
	IsCredit      bool               `json:"is_credit"`
	Status        string             `json:"status"`
	Items         []SaleItemResponse `json:"items"`
	Credit        *CreditResponse    `json:"credit,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

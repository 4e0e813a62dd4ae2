package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCreditRequest convierte una venta existente en crédito.
type CreateCreditRequest struct {
	SaleID     string `json:"sale_id" validate:"required,uuid"`
	EmployeeID string `json:"employee_id"`
}

// ClearCreditRequest salda un crédito abierto.
type ClearCreditRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash mpesa card"`
}

// CreditQuery filtros de listado.
type CreditQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=open cleared"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// CreditResponse salida de un crédito.
type CreditResponse struct {
	ID         string          `json:"id"`
	SaleID     string          `json:"sale_id"`
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CreditListResponse lista paginada de créditos.
type CreditListResponse struct {
	Items []CreditResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

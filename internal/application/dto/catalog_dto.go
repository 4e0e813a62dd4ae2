package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest entrada para crear o renombrar una categoría.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name    string           `json:"name" validate:"required,min=2,max=150"`
	Contact string           `json:"contact"`
	Email   string           `json:"email" validate:"omitempty,email"`
	Balance *decimal.Decimal `json:"balance"`
}

// UpdateSupplierRequest campos opcionales del proveedor.
type UpdateSupplierRequest struct {
	Name    *string          `json:"name"`
	Contact *string          `json:"contact"`
	Email   *string          `json:"email"`
	Balance *decimal.Decimal `json:"balance"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Contact   string          `json:"contact"`
	Email     string          `json:"email"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

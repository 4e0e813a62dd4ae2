package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto con su stock inicial.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=2,max=150"`
	SKU        string          `json:"sku" validate:"required,min=2,max=50"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock" validate:"min=0"`
	CategoryID *string         `json:"category_id"`
	SupplierID *string         `json:"supplier_id"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: se maneja vía reabastecimiento y ventas).
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=2,max=150"`
	SKU        *string          `json:"sku" validate:"omitempty,min=2,max=50"`
	Price      *decimal.Decimal `json:"price"`
	CategoryID *string          `json:"category_id"`
	SupplierID *string          `json:"supplier_id"`
}

// RestockRequest recepción de mercancía.
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// ProductQuery filtros de listado (query string).
type ProductQuery struct {
	CategoryID string `query:"category_id"`
	SupplierID string `query:"supplier_id"`
	Search     string `query:"search"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	CategoryID *string         `json:"category_id"`
	SupplierID *string         `json:"supplier_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

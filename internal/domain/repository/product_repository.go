package repository

import (
	"context"

	"github.com/majidtech25/my-project02/internal/domain/entity"
)

// ProductFilter criterios de listado. Limit <= 0 significa sin límite.
type ProductFilter struct {
	CategoryID string
	SupplierID string
	Search     string // coincide con nombre o SKU
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetBySKU compara sin distinguir mayúsculas.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	// Update no modifica Stock (se maneja vía UpdateStock desde el ledger).
	Update(ctx context.Context, p *entity.Product) error
	UpdateStock(ctx context.Context, id string, stock int) error
	Delete(ctx context.Context, id string) error
	// IsReferenced indica si alguna línea de venta apunta al producto.
	IsReferenced(ctx context.Context, id string) (bool, error)
}

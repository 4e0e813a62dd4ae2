package repository

import (
	"context"

	"github.com/majidtech25/my-project02/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	// GetByName compara sin distinguir mayúsculas.
	GetByName(ctx context.Context, name string) (*entity.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
	// ListWithBalance proveedores a los que se les debe algo (balance > 0).
	ListWithBalance(ctx context.Context) ([]*entity.Supplier, error)
	Update(ctx context.Context, s *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	HasProducts(ctx context.Context, id string) (bool, error)
}

package repository

import (
	"context"
	"time"

	"github.com/majidtech25/my-project02/internal/domain/entity"
)

// SaleFilter criterios de listado de ventas (fechas inclusivas). Limit <= 0 significa sin límite.
type SaleFilter struct {
	From       *time.Time
	To         *time.Time
	EmployeeID string
	Limit      int
	Offset     int
}

// SaleRepository define el puerto de persistencia para Sale y sus SaleItem.
// Las lecturas devuelven la venta con sus items ordenados por posición.
type SaleRepository interface {
	// Create inserta la venta y sus items.
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context, f SaleFilter) ([]*entity.Sale, error)
	// ReplaceItems borra los items actuales e inserta los nuevos.
	ReplaceItems(ctx context.Context, saleID string, items []entity.SaleItem) error
	// Update persiste total, flags de pago y updated_at.
	Update(ctx context.Context, s *entity.Sale) error
	// Delete elimina la venta; items y crédito caen en cascada.
	Delete(ctx context.Context, id string) error
	CountByDate(ctx context.Context, date time.Time) (int, error)
}

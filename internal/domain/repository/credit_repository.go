package repository

import (
	"context"
	"time"

	"github.com/majidtech25/my-project02/internal/domain/entity"
)

// CreditFilter criterios de listado. From/To filtran por la fecha de la venta.
type CreditFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// CreditRepository define el puerto de persistencia para Credit.
// Create devuelve domain.ErrDuplicate si la venta ya tiene crédito.
type CreditRepository interface {
	Create(ctx context.Context, c *entity.Credit) error
	GetByID(ctx context.Context, id string) (*entity.Credit, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Credit, error)
	GetBySaleID(ctx context.Context, saleID string) (*entity.Credit, error)
	// Update persiste amount, status y updated_at.
	Update(ctx context.Context, c *entity.Credit) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f CreditFilter) ([]*entity.Credit, error)
	CountOpenBySaleDate(ctx context.Context, date time.Time) (int, error)
	CountBySaleDate(ctx context.Context, date time.Time) (int, error)
}

package repository

import (
	"context"
	"time"

	"github.com/majidtech25/my-project02/internal/domain/entity"
)

// DayRepository define el puerto de persistencia para Day.
// Create devuelve domain.ErrDuplicate si ya hay un día con esa fecha o ya hay uno abierto.
type DayRepository interface {
	Create(ctx context.Context, d *entity.Day) error
	GetByID(ctx context.Context, id string) (*entity.Day, error)
	GetByDate(ctx context.Context, date time.Time) (*entity.Day, error)
	GetOpen(ctx context.Context) (*entity.Day, error)
	// GetOpenForShare bloquea el día abierto en modo compartido: ventas concurrentes
	// pueden avanzar pero un cierre espera a que terminen.
	GetOpenForShare(ctx context.Context) (*entity.Day, error)
	// GetOpenForUpdate bloquea el día abierto en exclusiva (cierre).
	GetOpenForUpdate(ctx context.Context) (*entity.Day, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Day, error)
	Update(ctx context.Context, d *entity.Day) error
	Delete(ctx context.Context, id string) error
}

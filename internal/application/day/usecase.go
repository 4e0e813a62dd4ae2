// Package day controla el ciclo de vida de la jornada operativa: cerrada → abierta → cerrada, sin reapertura.
package day

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

// EnsureOpen verifica que el día abierto sea el de hoy y lo bloquea en modo compartido.
// Usar dentro de la transacción de la operación que lo requiere.
func EnsureOpen(ctx context.Context, days repository.DayRepository, today time.Time) (*entity.Day, error) {
	d, err := days.GetOpenForShare(ctx)
	if err != nil {
		return nil, err
	}
	if d == nil || !d.Date.Equal(entity.DateOf(today)) {
		return nil, domain.ErrNoOpenDay
	}
	return d, nil
}

// ActiveEmployee obtiene el empleado y verifica que esté activo.
func ActiveEmployee(ctx context.Context, employees repository.EmployeeRepository, id string) (*entity.Employee, error) {
	e, err := employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: empleado %s", domain.ErrNotFound, id)
	}
	if !e.IsActive() {
		return nil, domain.ErrInactiveEmployee
	}
	return e, nil
}

// DayUseCase apertura, cierre, borrado y consulta de días.
type DayUseCase struct {
	tx    repository.TxRunner
	repos repository.Repos
	clock func() time.Time
	log   zerolog.Logger
}

// NewDayUseCase construye el caso de uso. clock debe devolver la hora en la zona del negocio.
func NewDayUseCase(tx repository.TxRunner, repos repository.Repos, clock func() time.Time, log zerolog.Logger) *DayUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &DayUseCase{tx: tx, repos: repos, clock: clock, log: log}
}

// OpenDay abre la jornada de hoy.
func (uc *DayUseCase) OpenDay(ctx context.Context, actorID string) (*dto.DayResponse, error) {
	now := uc.clock()
	today := entity.DateOf(now)
	var opened *entity.Day
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		if _, err := ActiveEmployee(ctx, r.Employees, actorID); err != nil {
			return err
		}
		open, err := r.Days.GetOpen(ctx)
		if err != nil {
			return err
		}
		if open != nil {
			return domain.ErrDayAlreadyOpen
		}
		existing, err := r.Days.GetByDate(ctx, today)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDayAlreadyExists
		}
		d := &entity.Day{
			ID:        uuid.New().String(),
			Date:      today,
			IsOpen:    true,
			OpenedBy:  actorID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.Days.Create(ctx, d); err != nil {
			// Otra apertura concurrente ganó la carrera del índice único.
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ErrDayAlreadyOpen
			}
			return err
		}
		opened = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("day_id", opened.ID).Str("date", opened.Date.Format(entity.DateLayout)).Str("opened_by", actorID).Msg("día abierto")
	return dto.FromDay(opened), nil
}

// CloseDay cierra la jornada abierta si no quedan créditos abiertos en sus ventas.
func (uc *DayUseCase) CloseDay(ctx context.Context, actorID string) (*dto.DayResponse, error) {
	now := uc.clock()
	var closed *entity.Day
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		d, err := r.Days.GetOpenForUpdate(ctx)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNoOpenDay
		}
		if _, err := ActiveEmployee(ctx, r.Employees, actorID); err != nil {
			return err
		}
		open, err := r.Credits.CountOpenBySaleDate(ctx, d.Date)
		if err != nil {
			return err
		}
		if open > 0 {
			return fmt.Errorf("%w (%d)", domain.ErrUnclearedCredits, open)
		}
		d.IsOpen = false
		d.ClosedBy = &actorID
		d.UpdatedAt = now
		if err := r.Days.Update(ctx, d); err != nil {
			return err
		}
		closed = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("day_id", closed.ID).Str("closed_by", actorID).Msg("día cerrado")
	return dto.FromDay(closed), nil
}

// DeleteDay elimina un día sin ventas ni créditos en su fecha.
func (uc *DayUseCase) DeleteDay(ctx context.Context, id string) error {
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		d, err := r.Days.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("%w: día %s", domain.ErrNotFound, id)
		}
		sales, err := r.Sales.CountByDate(ctx, d.Date)
		if err != nil {
			return err
		}
		if sales > 0 {
			return domain.ErrDayHasSales
		}
		credits, err := r.Credits.CountBySaleDate(ctx, d.Date)
		if err != nil {
			return err
		}
		if credits > 0 {
			return domain.ErrDayHasCredits
		}
		return r.Days.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("day_id", id).Msg("día eliminado")
	return nil
}

// Current devuelve el día abierto o ErrNoOpenDay.
func (uc *DayUseCase) Current(ctx context.Context) (*dto.DayResponse, error) {
	d, err := uc.repos.Days.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNoOpenDay
	}
	return dto.FromDay(d), nil
}

// GetByID obtiene un día.
func (uc *DayUseCase) GetByID(ctx context.Context, id string) (*dto.DayResponse, error) {
	d, err := uc.repos.Days.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: día %s", domain.ErrNotFound, id)
	}
	return dto.FromDay(d), nil
}

// List días más recientes primero.
func (uc *DayUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.DayListResponse, error) {
	page.DefaultPage()
	list, err := uc.repos.Days.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.DayListResponse{Items: make([]dto.DayResponse, 0, len(list)), Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}
	for _, d := range list {
		out.Items = append(out.Items, *dto.FromDay(d))
	}
	return out, nil
}

package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/majidtech25/my-project02/internal/application/day"
	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

// CreditUseCase ciclo de vida del crédito: open --clear--> cleared, open --revoke--> eliminado.
type CreditUseCase struct {
	tx    repository.TxRunner
	repos repository.Repos
	clock func() time.Time
	log   zerolog.Logger
}

// NewCreditUseCase construye el caso de uso.
func NewCreditUseCase(tx repository.TxRunner, repos repository.Repos, clock func() time.Time, log zerolog.Logger) *CreditUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &CreditUseCase{tx: tx, repos: repos, clock: clock, log: log}
}

// CreateCredit convierte una venta existente en crédito abierto.
func (uc *CreditUseCase) CreateCredit(ctx context.Context, actorID string, in dto.CreateCreditRequest) (*dto.CreditResponse, error) {
	employeeID := in.EmployeeID
	if employeeID == "" {
		employeeID = actorID
	}
	now := uc.clock()
	var credit *entity.Credit
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		sale, err := r.Sales.GetForUpdate(ctx, in.SaleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, in.SaleID)
		}
		if _, err := day.ActiveEmployee(ctx, r.Employees, employeeID); err != nil {
			return err
		}
		credit, err = openCredit(ctx, r, sale, employeeID, now)
		if err != nil {
			return err
		}
		sale.MarkCredit()
		sale.UpdatedAt = now
		return r.Sales.Update(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("credit_id", credit.ID).Str("sale_id", credit.SaleID).Msg("crédito creado")
	return dto.FromCredit(credit), nil
}

// ClearCredit salda un crédito abierto; la venta queda pagada con el método indicado.
func (uc *CreditUseCase) ClearCredit(ctx context.Context, creditID string, in dto.ClearCreditRequest) (*dto.CreditResponse, error) {
	method := normalizeMethod(in.PaymentMethod)
	now := uc.clock()
	var credit *entity.Credit
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		credit, err = r.Credits.GetForUpdate(ctx, creditID)
		if err != nil {
			return err
		}
		if credit == nil {
			return fmt.Errorf("%w: crédito %s", domain.ErrNotFound, creditID)
		}
		if !credit.IsOpen() {
			return fmt.Errorf("%w: el crédito ya está saldado", domain.ErrInvalidTransition)
		}
		if method == "" {
			return fmt.Errorf("%w: se requiere el método de pago", domain.ErrInvalidTransition)
		}
		if !method.Valid() {
			return fmt.Errorf("%w: método de pago desconocido %q", domain.ErrInvalidInput, in.PaymentMethod)
		}
		sale, err := r.Sales.GetForUpdate(ctx, credit.SaleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, credit.SaleID)
		}
		credit.Status = entity.CreditCleared
		credit.UpdatedAt = now
		if err := r.Credits.Update(ctx, credit); err != nil {
			return err
		}
		sale.MarkPaid(method)
		sale.UpdatedAt = now
		return r.Sales.Update(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("credit_id", credit.ID).Str("payment_method", string(method)).Msg("crédito saldado")
	return dto.FromCredit(credit), nil
}

// RevokeCredit elimina un crédito abierto mientras el día de su venta siga abierto.
// La venta queda pendiente de pago.
func (uc *CreditUseCase) RevokeCredit(ctx context.Context, creditID string) error {
	now := uc.clock()
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		credit, err := r.Credits.GetForUpdate(ctx, creditID)
		if err != nil {
			return err
		}
		if credit == nil {
			return fmt.Errorf("%w: crédito %s", domain.ErrNotFound, creditID)
		}
		if !credit.IsOpen() {
			return fmt.Errorf("%w: un crédito saldado no se puede revocar", domain.ErrInvalidTransition)
		}
		sale, err := r.Sales.GetForUpdate(ctx, credit.SaleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, credit.SaleID)
		}
		d, err := r.Days.GetByDate(ctx, sale.Date)
		if err != nil {
			return err
		}
		if d == nil || !d.IsOpen {
			return domain.ErrDayClosed
		}
		if err := r.Credits.Delete(ctx, credit.ID); err != nil {
			return err
		}
		sale.MarkPending()
		sale.UpdatedAt = now
		return r.Sales.Update(ctx, sale)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("credit_id", creditID).Msg("crédito revocado")
	return nil
}

// GetByID obtiene un crédito.
func (uc *CreditUseCase) GetByID(ctx context.Context, creditID string) (*dto.CreditResponse, error) {
	c, err := uc.repos.Credits.GetByID(ctx, creditID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: crédito %s", domain.ErrNotFound, creditID)
	}
	return dto.FromCredit(c), nil
}

// List créditos más recientes primero, opcionalmente filtrados por estado.
func (uc *CreditUseCase) List(ctx context.Context, q dto.CreditQuery) (*dto.CreditListResponse, error) {
	if q.Status != "" && q.Status != entity.CreditOpen && q.Status != entity.CreditCleared {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, q.Status)
	}
	p := page(q.Limit, q.Offset)
	list, err := uc.repos.Credits.List(ctx, repository.CreditFilter{Status: q.Status, Limit: p.Limit, Offset: p.Offset})
	if err != nil {
		return nil, err
	}
	out := &dto.CreditListResponse{Items: make([]dto.CreditResponse, 0, len(list)), Page: dto.PageResponse{Limit: p.Limit, Offset: p.Offset}}
	for _, c := range list {
		out.Items = append(out.Items, *dto.FromCredit(c))
	}
	return out, nil
}

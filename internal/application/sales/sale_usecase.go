// Package sales es el motor de ventas y créditos: cada operación corre en una única
// transacción que combina el control del día, el ledger de stock y la persistencia.
package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/majidtech25/my-project02/internal/application/day"
	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/application/stock"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

// SaleUseCase registro, edición, borrado, cobro y consulta de ventas.
type SaleUseCase struct {
	tx    repository.TxRunner
	repos repository.Repos
	clock func() time.Time
	log   zerolog.Logger
}

// NewSaleUseCase construye el caso de uso. clock debe devolver la hora en la zona del negocio.
func NewSaleUseCase(tx repository.TxRunner, repos repository.Repos, clock func() time.Time, log zerolog.Logger) *SaleUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &SaleUseCase{tx: tx, repos: repos, clock: clock, log: log}
}

// CreateSale registra una venta pagada o a crédito en el día abierto.
// actorID es el empleado autenticado; se usa si la solicitud no indica EmployeeID.
func (uc *SaleUseCase) CreateSale(ctx context.Context, actorID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	employeeID := in.EmployeeID
	if employeeID == "" {
		employeeID = actorID
	}
	method := normalizeMethod(in.PaymentMethod)
	now := uc.clock()

	var (
		sale   *entity.Sale
		credit *entity.Credit
	)
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		openDay, err := day.EnsureOpen(ctx, r.Days, now)
		if err != nil {
			return err
		}
		if _, err := day.ActiveEmployee(ctx, r.Employees, employeeID); err != nil {
			return err
		}
		// Crédito con método es una solicitud contradictoria (InvalidInput); sin crédito hace falta un método válido.
		switch {
		case in.IsCredit && method != "":
			return fmt.Errorf("%w: una venta a crédito no lleva método de pago", domain.ErrInvalidInput)
		case !in.IsCredit && !method.Valid():
			return domain.ErrPaymentMethodRequired
		}

		res, err := stock.Reserve(ctx, r.Products, toLines(in.Items))
		if err != nil {
			return err
		}
		sale = &entity.Sale{
			ID:          uuid.New().String(),
			Date:        openDay.Date,
			TotalAmount: res.Total,
			EmployeeID:  employeeID,
			Items:       res.Items,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		for i := range sale.Items {
			sale.Items[i].SaleID = sale.ID
		}
		if in.IsCredit {
			sale.MarkCredit()
		} else {
			sale.MarkPaid(method)
		}
		if err := r.Sales.Create(ctx, sale); err != nil {
			return err
		}
		if !in.IsCredit {
			return nil
		}
		credit, err = openCredit(ctx, r, sale, employeeID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sale_id", sale.ID).Str("employee_id", employeeID).
		Str("total", sale.TotalAmount.StringFixed(2)).Bool("credit", sale.IsCredit).Msg("venta registrada")
	return dto.FromSale(sale, credit), nil
}

// UpdateSale reemplaza los items: devuelve el stock anterior, reserva el nuevo y
// sincroniza el monto del crédito asociado. Sin items devuelve la venta sin cambios.
func (uc *SaleUseCase) UpdateSale(ctx context.Context, saleID string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return uc.GetByID(ctx, saleID)
	}
	now := uc.clock()
	var (
		sale   *entity.Sale
		credit *entity.Credit
	)
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		sale, err = r.Sales.GetForUpdate(ctx, saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
		}
		res, err := stock.Replace(ctx, r.Products, sale.Items, toLines(in.Items))
		if err != nil {
			return err
		}
		for i := range res.Items {
			res.Items[i].SaleID = sale.ID
		}
		if err := r.Sales.ReplaceItems(ctx, sale.ID, res.Items); err != nil {
			return err
		}
		sale.Items = res.Items
		sale.TotalAmount = res.Total
		sale.UpdatedAt = now
		if err := r.Sales.Update(ctx, sale); err != nil {
			return err
		}

		credit, err = r.Credits.GetBySaleID(ctx, sale.ID)
		if err != nil || credit == nil {
			return err
		}
		credit.Amount = sale.TotalAmount
		credit.UpdatedAt = now
		return r.Credits.Update(ctx, credit)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sale_id", sale.ID).Str("total", sale.TotalAmount.StringFixed(2)).Msg("venta actualizada")
	return dto.FromSale(sale, credit), nil
}

// DeleteSale devuelve el stock y elimina la venta (items y crédito en cascada).
func (uc *SaleUseCase) DeleteSale(ctx context.Context, saleID string) error {
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		sale, err := r.Sales.GetForUpdate(ctx, saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
		}
		if err := stock.Release(ctx, r.Products, sale.Items); err != nil {
			return err
		}
		return r.Sales.Delete(ctx, sale.ID)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("sale_id", saleID).Msg("venta eliminada")
	return nil
}

// SettleSale cobra una venta pendiente (la que quedó así al revocar su crédito).
func (uc *SaleUseCase) SettleSale(ctx context.Context, saleID string, in dto.SettleSaleRequest) (*dto.SaleResponse, error) {
	method := normalizeMethod(in.PaymentMethod)
	if method == "" {
		return nil, domain.ErrPaymentMethodRequired
	}
	if !method.Valid() {
		return nil, fmt.Errorf("%w: método de pago desconocido %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	now := uc.clock()
	var sale *entity.Sale
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		sale, err = r.Sales.GetForUpdate(ctx, saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
		}
		if !sale.IsPending() {
			return fmt.Errorf("%w: la venta no está pendiente de pago", domain.ErrInvalidTransition)
		}
		sale.MarkPaid(method)
		sale.UpdatedAt = now
		return r.Sales.Update(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sale_id", sale.ID).Str("payment_method", string(method)).Msg("venta cobrada")
	return dto.FromSale(sale, nil), nil
}

// GetByID obtiene la venta con sus items y su crédito, si tiene.
func (uc *SaleUseCase) GetByID(ctx context.Context, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.repos.Sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}
	credit, err := uc.repos.Credits.GetBySaleID(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromSale(sale, credit), nil
}

// List ventas más recientes primero, filtradas por rango de fechas y empleado.
func (uc *SaleUseCase) List(ctx context.Context, q dto.SaleQuery) (*dto.SaleListResponse, error) {
	from, to, err := parseRange(q.From, q.To)
	if err != nil {
		return nil, err
	}
	p := page(q.Limit, q.Offset)
	list, err := uc.repos.Sales.List(ctx, repository.SaleFilter{
		From: from, To: to, EmployeeID: q.EmployeeID, Limit: p.Limit, Offset: p.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{Items: make([]dto.SaleResponse, 0, len(list)), Page: dto.PageResponse{Limit: p.Limit, Offset: p.Offset}}
	for _, s := range list {
		out.Items = append(out.Items, *dto.FromSale(s, nil))
	}
	return out, nil
}

// ListForEmployee ventas registradas a nombre del empleado.
func (uc *SaleUseCase) ListForEmployee(ctx context.Context, employeeID string, q dto.SaleQuery) (*dto.SaleListResponse, error) {
	q.EmployeeID = employeeID
	return uc.List(ctx, q)
}

// openCredit crea el crédito abierto de la venta. Un crédito previo o la carrera
// del índice único sobre sale_id se reportan como ErrDuplicateCredit.
func openCredit(ctx context.Context, r repository.Repos, sale *entity.Sale, employeeID string, now time.Time) (*entity.Credit, error) {
	existing, err := r.Credits.GetBySaleID(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCredit
	}
	c := &entity.Credit{
		ID:         uuid.New().String(),
		SaleID:     sale.ID,
		EmployeeID: employeeID,
		Amount:     sale.TotalAmount,
		Status:     entity.CreditOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.Credits.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicateCredit
		}
		return nil, err
	}
	return c, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const (
	saleColumns     = `id, date, total_amount, employee_id, payment_method, is_paid, is_credit, created_at, updated_at`
	saleItemColumns = `id, sale_id, product_id, quantity, unit_price, position`
)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var (
		s  entity.Sale
		pm *string
	)
	err := row.Scan(&s.ID, &s.Date, &s.TotalAmount, &s.EmployeeID, &pm, &s.IsPaid, &s.IsCredit, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Date = entity.DateOf(s.Date)
	if pm != nil {
		method := entity.PaymentMethod(*pm)
		s.PaymentMethod = &method
	}
	return &s, nil
}

func paymentMethodArg(pm *entity.PaymentMethod) any {
	if pm == nil {
		return nil
	}
	return string(*pm)
}

// Create inserta la venta y sus items (llamar dentro de una transacción).
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (`+saleColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Date, s.TotalAmount, s.EmployeeID, paymentMethodArg(s.PaymentMethod),
		s.IsPaid, s.IsCredit, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return r.insertItems(ctx, s.ID, s.Items)
}

func (r *SaleRepo) insertItems(ctx context.Context, saleID string, items []entity.SaleItem) error {
	for _, it := range items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (`+saleItemColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID, saleID, it.ProductID, it.Quantity, it.UnitPrice, it.Position)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la venta con sus items.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	return r.getOne(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
}

// GetForUpdate bloquea la venta hasta el fin de la transacción.
func (r *SaleRepo) GetForUpdate(ctx context.Context, id string) (*entity.Sale, error) {
	return r.getOne(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1 FOR UPDATE`, id)
}

func (r *SaleRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if err := r.attachItems(ctx, []*entity.Sale{s}); err != nil {
		return nil, err
	}
	return s, nil
}

// List ventas más recientes primero, con sus items.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	var where []string
	var args []any
	if f.From != nil {
		args = append(args, entity.DateOf(*f.From))
		where = append(where, "date >= "+placeholder(len(args)))
	}
	if f.To != nil {
		args = append(args, entity.DateOf(*f.To))
		where = append(where, "date <= "+placeholder(len(args)))
	}
	if f.EmployeeID != "" {
		args = append(args, f.EmployeeID)
		where = append(where, "employee_id = "+placeholder(len(args)))
	}
	query := `SELECT ` + saleColumns + ` FROM sales`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id"
	clause, args := limitClause(f.Limit, f.Offset, args)

	rows, err := r.q.Query(ctx, query+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	var sales []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	if err := r.attachItems(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// attachItems carga los items de todas las ventas en una sola consulta.
func (r *SaleRepo) attachItems(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Sale, len(sales))
	ids := make([]string, 0, len(sales))
	for _, s := range sales {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+saleItemColumns+` FROM sale_items WHERE sale_id = ANY($1::uuid[]) ORDER BY sale_id, position`, ids)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Position); err != nil {
			return fmt.Errorf("scan sale item: %w", err)
		}
		if s, ok := byID[it.SaleID]; ok {
			s.Items = append(s.Items, it)
		}
	}
	return rows.Err()
}

func (r *SaleRepo) ReplaceItems(ctx context.Context, saleID string, items []entity.SaleItem) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, saleID); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return r.insertItems(ctx, saleID, items)
}

func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `
		UPDATE sales SET total_amount = $2, payment_method = $3, is_paid = $4, is_credit = $5, updated_at = $6
		WHERE id = $1`,
		s.ID, s.TotalAmount, paymentMethodArg(s.PaymentMethod), s.IsPaid, s.IsCredit, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) CountByDate(ctx context.Context, date time.Time) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales WHERE date = $1`, entity.DateOf(date)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

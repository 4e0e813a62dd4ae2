package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

var _ repository.CreditRepository = (*CreditRepo)(nil)

const creditColumns = `c.id, c.sale_id, c.employee_id, c.amount, c.status, c.created_at, c.updated_at`

// CreditRepo implementación de CreditRepository sobre PostgreSQL.
type CreditRepo struct {
	q Querier
}

// NewCreditRepository construye el adaptador.
func NewCreditRepository(q Querier) *CreditRepo {
	return &CreditRepo{q: q}
}

func scanCredit(row pgx.Row) (*entity.Credit, error) {
	var c entity.Credit
	if err := row.Scan(&c.ID, &c.SaleID, &c.EmployeeID, &c.Amount, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserta el crédito; sale_id es único.
func (r *CreditRepo) Create(ctx context.Context, c *entity.Credit) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO credits (id, sale_id, employee_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.SaleID, c.EmployeeID, c.Amount, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert credit: %w", err)
	}
	return nil
}

func (r *CreditRepo) GetByID(ctx context.Context, id string) (*entity.Credit, error) {
	return r.getOne(ctx, `SELECT `+creditColumns+` FROM credits c WHERE c.id = $1`, id)
}

func (r *CreditRepo) GetForUpdate(ctx context.Context, id string) (*entity.Credit, error) {
	return r.getOne(ctx, `SELECT `+creditColumns+` FROM credits c WHERE c.id = $1 FOR UPDATE`, id)
}

func (r *CreditRepo) GetBySaleID(ctx context.Context, saleID string) (*entity.Credit, error) {
	return r.getOne(ctx, `SELECT `+creditColumns+` FROM credits c WHERE c.sale_id = $1`, saleID)
}

func (r *CreditRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Credit, error) {
	c, err := scanCredit(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit: %w", err)
	}
	return c, nil
}

func (r *CreditRepo) Update(ctx context.Context, c *entity.Credit) error {
	_, err := r.q.Exec(ctx, `UPDATE credits SET amount = $2, status = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Amount, c.Status, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update credit: %w", err)
	}
	return nil
}

func (r *CreditRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM credits WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete credit: %w", err)
	}
	return nil
}

// List créditos más recientes primero; From/To filtran por la fecha de la venta.
func (r *CreditRepo) List(ctx context.Context, f repository.CreditFilter) ([]*entity.Credit, error) {
	var where []string
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, "c.status = "+placeholder(len(args)))
	}
	if f.From != nil {
		args = append(args, entity.DateOf(*f.From))
		where = append(where, "s.date >= "+placeholder(len(args)))
	}
	if f.To != nil {
		args = append(args, entity.DateOf(*f.To))
		where = append(where, "s.date <= "+placeholder(len(args)))
	}
	query := `SELECT ` + creditColumns + ` FROM credits c JOIN sales s ON s.id = c.sale_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY c.created_at DESC, c.id"
	clause, args := limitClause(f.Limit, f.Offset, args)

	rows, err := r.q.Query(ctx, query+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Credit
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CreditRepo) CountOpenBySaleDate(ctx context.Context, date time.Time) (int, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM credits c JOIN sales s ON s.id = c.sale_id
		WHERE s.date = $1 AND c.status = 'open'`, entity.DateOf(date))
}

func (r *CreditRepo) CountBySaleDate(ctx context.Context, date time.Time) (int, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM credits c JOIN sales s ON s.id = c.sale_id
		WHERE s.date = $1`, entity.DateOf(date))
}

func (r *CreditRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count credits: %w", err)
	}
	return n, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

var _ repository.CreditRepository = (*CreditRepo)(nil)

const creditColumns = `c.id, c.sale_id, c.employee_id, c.amount, c.status, c.created_at, c.updated_at`

type creditRow struct {
	ID         string          `db:"id"`
	SaleID     string          `db:"sale_id"`
	EmployeeID string          `db:"employee_id"`
	Amount     decimal.Decimal `db:"amount"`
	Status     string          `db:"status"`
	CreatedAt  timestamp       `db:"created_at"`
	UpdatedAt  timestamp       `db:"updated_at"`
}

func (r creditRow) toEntity() *entity.Credit {
	return &entity.Credit{
		ID: r.ID, SaleID: r.SaleID, EmployeeID: r.EmployeeID, Amount: r.Amount, Status: r.Status,
		CreatedAt: r.CreatedAt.Time(), UpdatedAt: r.UpdatedAt.Time(),
	}
}

// CreditRepo implementación de CreditRepository sobre SQLite.
type CreditRepo struct {
	q sqlx.ExtContext
}

// NewCreditRepository construye el adaptador.
func NewCreditRepository(q sqlx.ExtContext) *CreditRepo {
	return &CreditRepo{q: q}
}

// Create persiste el crédito; sale_id es único.
func (r *CreditRepo) Create(ctx context.Context, c *entity.Credit) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO credits (id, sale_id, employee_id, amount, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.SaleID, c.EmployeeID, c.Amount.String(), c.Status, formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert credit: %w", err)
	}
	return nil
}

func (r *CreditRepo) GetByID(ctx context.Context, id string) (*entity.Credit, error) {
	return r.getOne(ctx, `SELECT `+creditColumns+` FROM credits c WHERE c.id = ?`, id)
}

func (r *CreditRepo) GetForUpdate(ctx context.Context, id string) (*entity.Credit, error) {
	return r.GetByID(ctx, id)
}

func (r *CreditRepo) GetBySaleID(ctx context.Context, saleID string) (*entity.Credit, error) {
	return r.getOne(ctx, `SELECT `+creditColumns+` FROM credits c WHERE c.sale_id = ?`, saleID)
}

func (r *CreditRepo) getOne(ctx context.Context, query string, args ...interface{}) (*entity.Credit, error) {
	var row creditRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit: %w", err)
	}
	return row.toEntity(), nil
}

// Update persiste amount, status y updated_at.
func (r *CreditRepo) Update(ctx context.Context, c *entity.Credit) error {
	_, err := r.q.ExecContext(ctx, `UPDATE credits SET amount = ?, status = ?, updated_at = ? WHERE id = ?`,
		c.Amount.String(), c.Status, formatTime(c.UpdatedAt), c.ID)
	if err != nil {
		return fmt.Errorf("update credit: %w", err)
	}
	return nil
}

func (r *CreditRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM credits WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete credit: %w", err)
	}
	return nil
}

// List créditos más recientes primero; From/To filtran por la fecha de la venta.
func (r *CreditRepo) List(ctx context.Context, f repository.CreditFilter) ([]*entity.Credit, error) {
	var where []string
	var args []interface{}
	if f.Status != "" {
		where = append(where, "c.status = ?")
		args = append(args, f.Status)
	}
	if f.From != nil {
		where = append(where, "s.date >= ?")
		args = append(args, formatDate(*f.From))
	}
	if f.To != nil {
		where = append(where, "s.date <= ?")
		args = append(args, formatDate(*f.To))
	}
	query := `SELECT ` + creditColumns + ` FROM credits c JOIN sales s ON s.id = c.sale_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY c.created_at DESC, c.id"
	clause, args := limitClause(f.Limit, f.Offset, args)

	var rows []creditRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query+clause, args...); err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	list := make([]*entity.Credit, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

// CountOpenBySaleDate créditos abiertos cuyas ventas son de la fecha.
func (r *CreditRepo) CountOpenBySaleDate(ctx context.Context, date time.Time) (int, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM credits c JOIN sales s ON s.id = c.sale_id
		WHERE s.date = ? AND c.status = 'open'`, formatDate(date))
}

// CountBySaleDate créditos (de cualquier estado) cuyas ventas son de la fecha.
func (r *CreditRepo) CountBySaleDate(ctx context.Context, date time.Time) (int, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM credits c JOIN sales s ON s.id = c.sale_id
		WHERE s.date = ?`, formatDate(date))
}

func (r *CreditRepo) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.q, &n, query, args...); err != nil {
		return 0, fmt.Errorf("count credits: %w", err)
	}
	return n, nil
}

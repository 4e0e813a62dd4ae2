package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

var _ repository.DayRepository = (*DayRepo)(nil)

const dayColumns = `id, date, is_open, opened_by, closed_by, created_at, updated_at`

// DayRepo implementación de DayRepository sobre PostgreSQL.
type DayRepo struct {
	q Querier
}

// NewDayRepository construye el adaptador.
func NewDayRepository(q Querier) *DayRepo {
	return &DayRepo{q: q}
}

func scanDay(row pgx.Row) (*entity.Day, error) {
	var d entity.Day
	if err := row.Scan(&d.ID, &d.Date, &d.IsOpen, &d.OpenedBy, &d.ClosedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.Date = entity.DateOf(d.Date)
	return &d, nil
}

// Create inserta el día. La fecha única y el índice parcial uq_days_single_open devuelven ErrDuplicate.
func (r *DayRepo) Create(ctx context.Context, d *entity.Day) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO days (`+dayColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.Date, d.IsOpen, d.OpenedBy, d.ClosedBy, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert day: %w", err)
	}
	return nil
}

func (r *DayRepo) GetByID(ctx context.Context, id string) (*entity.Day, error) {
	return r.getOne(ctx, `SELECT `+dayColumns+` FROM days WHERE id = $1`, id)
}

func (r *DayRepo) GetByDate(ctx context.Context, date time.Time) (*entity.Day, error) {
	return r.getOne(ctx, `SELECT `+dayColumns+` FROM days WHERE date = $1`, entity.DateOf(date))
}

func (r *DayRepo) GetOpen(ctx context.Context) (*entity.Day, error) {
	return r.getOne(ctx, `SELECT `+dayColumns+` FROM days WHERE is_open`)
}

func (r *DayRepo) GetOpenForShare(ctx context.Context) (*entity.Day, error) {
	return r.getOne(ctx, `SELECT `+dayColumns+` FROM days WHERE is_open FOR SHARE`)
}

func (r *DayRepo) GetOpenForUpdate(ctx context.Context) (*entity.Day, error) {
	return r.getOne(ctx, `SELECT `+dayColumns+` FROM days WHERE is_open FOR UPDATE`)
}

func (r *DayRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Day, error) {
	d, err := scanDay(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get day: %w", err)
	}
	return d, nil
}

// List días más recientes primero.
func (r *DayRepo) List(ctx context.Context, limit, offset int) ([]*entity.Day, error) {
	clause, args := limitClause(limit, offset, nil)
	rows, err := r.q.Query(ctx, `SELECT `+dayColumns+` FROM days ORDER BY date DESC`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	defer rows.Close()
	var list []*entity.Day
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *DayRepo) Update(ctx context.Context, d *entity.Day) error {
	_, err := r.q.Exec(ctx, `UPDATE days SET is_open = $2, closed_by = $3, updated_at = $4 WHERE id = $1`,
		d.ID, d.IsOpen, d.ClosedBy, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update day: %w", err)
	}
	return nil
}

func (r *DayRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM days WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete day: %w", err)
	}
	return nil
}

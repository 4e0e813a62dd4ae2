package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

var _ repository.DayRepository = (*DayRepo)(nil)

const dayColumns = `id, date, is_open, opened_by, closed_by, created_at, updated_at`

type dayRow struct {
	ID        string       `db:"id"`
	Date      calendarDate `db:"date"`
	IsOpen    bool         `db:"is_open"`
	OpenedBy  string       `db:"opened_by"`
	ClosedBy  *string      `db:"closed_by"`
	CreatedAt timestamp    `db:"created_at"`
	UpdatedAt timestamp    `db:"updated_at"`
}

func (r dayRow) toEntity() *entity.Day {
	return &entity.Day{
		ID: r.ID, Date: r.Date.Time(), IsOpen: r.IsOpen, OpenedBy: r.OpenedBy, ClosedBy: r.ClosedBy,
		CreatedAt: r.CreatedAt.Time(), UpdatedAt: r.UpdatedAt.Time(),
	}
}

// DayRepo implementación de DayRepository sobre SQLite.
// Los índices únicos (date) y parcial (is_open = 1) sostienen las invariantes de apertura.
type DayRepo struct {
	q sqlx.ExtContext
}

// NewDayRepository construye el adaptador.
func NewDayRepository(q sqlx.ExtContext) *DayRepo {
	return &DayRepo{q: q}
}

func (r *DayRepo) Create(ctx context.Context, d *entity.Day) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO days (`+dayColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, formatDate(d.Date), d.IsOpen, d.OpenedBy, d.ClosedBy, formatTime(d.CreatedAt), formatTime(d.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert day: %w", err)
	}
	return nil
}

func (r *DayRepo) GetByID(ctx context.Context, id string) (*entity.Day, error) {
	return r.getOne(ctx, `SELECT `+dayColumns+` FROM days WHERE id = ?`, id)
}

func (r *DayRepo) GetByDate(ctx context.Context, date time.Time) (*entity.Day, error) {
	return r.getOne(ctx, `SELECT `+dayColumns+` FROM days WHERE date = ?`, formatDate(date))
}

func (r *DayRepo) GetOpen(ctx context.Context) (*entity.Day, error) {
	return r.getOne(ctx, `SELECT `+dayColumns+` FROM days WHERE is_open = 1`)
}

// GetOpenForShare sin bloqueos de fila en SQLite; la conexión única serializa.
func (r *DayRepo) GetOpenForShare(ctx context.Context) (*entity.Day, error) {
	return r.GetOpen(ctx)
}

func (r *DayRepo) GetOpenForUpdate(ctx context.Context) (*entity.Day, error) {
	return r.GetOpen(ctx)
}

func (r *DayRepo) getOne(ctx context.Context, query string, args ...interface{}) (*entity.Day, error) {
	var row dayRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get day: %w", err)
	}
	return row.toEntity(), nil
}

// List días del más reciente al más antiguo.
func (r *DayRepo) List(ctx context.Context, limit, offset int) ([]*entity.Day, error) {
	clause, args := limitClause(limit, offset, nil)
	var rows []dayRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, `SELECT `+dayColumns+` FROM days ORDER BY date DESC`+clause, args...); err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	list := make([]*entity.Day, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

func (r *DayRepo) Update(ctx context.Context, d *entity.Day) error {
	_, err := r.q.ExecContext(ctx, `UPDATE days SET is_open = ?, closed_by = ?, updated_at = ? WHERE id = ?`,
		d.IsOpen, d.ClosedBy, formatTime(d.UpdatedAt), d.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update day: %w", err)
	}
	return nil
}

func (r *DayRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM days WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete day: %w", err)
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, contact, email, balance, created_at, updated_at`

type supplierRow struct {
	ID        string          `db:"id"`
	Name      string          `db:"name"`
	Contact   string          `db:"contact"`
	Email     string          `db:"email"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt timestamp       `db:"created_at"`
	UpdatedAt timestamp       `db:"updated_at"`
}

func (r supplierRow) toEntity() *entity.Supplier {
	return &entity.Supplier{
		ID: r.ID, Name: r.Name, Contact: r.Contact, Email: r.Email, Balance: r.Balance,
		CreatedAt: r.CreatedAt.Time(), UpdatedAt: r.UpdatedAt.Time(),
	}
}

// SupplierRepo implementación de SupplierRepository sobre SQLite.
type SupplierRepo struct {
	q sqlx.ExtContext
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q sqlx.ExtContext) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO suppliers (`+supplierColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Contact, s.Email, s.Balance.String(), formatTime(s.CreatedAt), formatTime(s.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return r.getOne(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, id)
}

func (r *SupplierRepo) GetByName(ctx context.Context, name string) (*entity.Supplier, error) {
	return r.getOne(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE lower(name) = lower(?)`, name)
}

func (r *SupplierRepo) getOne(ctx context.Context, query string, args ...interface{}) (*entity.Supplier, error) {
	var row supplierRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return row.toEntity(), nil
}

func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	clause, args := limitClause(limit, offset, nil)
	return r.selectMany(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY name`+clause, args...)
}

// ListWithBalance filtra en Go: balance es TEXT y compararlo en SQL sería lexicográfico.
func (r *SupplierRepo) ListWithBalance(ctx context.Context) ([]*entity.Supplier, error) {
	all, err := r.selectMany(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Supplier, 0, len(all))
	for _, s := range all {
		if s.Balance.IsPositive() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *SupplierRepo) selectMany(ctx context.Context, query string, args ...interface{}) ([]*entity.Supplier, error) {
	var rows []supplierRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	list := make([]*entity.Supplier, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE suppliers SET name = ?, contact = ?, email = ?, balance = ?, updated_at = ? WHERE id = ?`,
		s.Name, s.Contact, s.Email, s.Balance.String(), formatTime(s.UpdatedAt), s.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM suppliers WHERE id = ?`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) HasProducts(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, r.q, &exists, `SELECT EXISTS (SELECT 1 FROM products WHERE supplier_id = ?)`, id); err != nil {
		return false, fmt.Errorf("supplier products: %w", err)
	}
	return exists, nil
}

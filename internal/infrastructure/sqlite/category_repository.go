package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

type categoryRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt timestamp `db:"created_at"`
	UpdatedAt timestamp `db:"updated_at"`
}

func (r categoryRow) toEntity() *entity.Category {
	return &entity.Category{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt.Time(), UpdatedAt: r.UpdatedAt.Time()}
}

// CategoryRepo implementación de CategoryRepository sobre SQLite.
type CategoryRepo struct {
	q sqlx.ExtContext
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q sqlx.ExtContext) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO categories (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.getOne(ctx, `SELECT id, name, created_at, updated_at FROM categories WHERE id = ?`, id)
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.getOne(ctx, `SELECT id, name, created_at, updated_at FROM categories WHERE lower(name) = lower(?)`, name)
}

func (r *CategoryRepo) getOne(ctx context.Context, query string, args ...interface{}) (*entity.Category, error) {
	var row categoryRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return row.toEntity(), nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var rows []categoryRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, `SELECT id, name, created_at, updated_at FROM categories ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	list := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	_, err := r.q.ExecContext(ctx, `UPDATE categories SET name = ?, updated_at = ? WHERE id = ?`,
		c.Name, formatTime(c.UpdatedAt), c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) HasProducts(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, r.q, &exists, `SELECT EXISTS (SELECT 1 FROM products WHERE category_id = ?)`, id); err != nil {
		return false, fmt.Errorf("category products: %w", err)
	}
	return exists, nil
}

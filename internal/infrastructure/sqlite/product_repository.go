package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, sku, price, stock, category_id, supplier_id, created_at, updated_at`

type productRow struct {
	ID         string          `db:"id"`
	Name       string          `db:"name"`
	SKU        string          `db:"sku"`
	Price      decimal.Decimal `db:"price"`
	Stock      int             `db:"stock"`
	CategoryID *string         `db:"category_id"`
	SupplierID *string         `db:"supplier_id"`
	CreatedAt  timestamp       `db:"created_at"`
	UpdatedAt  timestamp       `db:"updated_at"`
}

func (r productRow) toEntity() *entity.Product {
	return &entity.Product{
		ID: r.ID, Name: r.Name, SKU: r.SKU, Price: r.Price, Stock: r.Stock,
		CategoryID: r.CategoryID, SupplierID: r.SupplierID,
		CreatedAt: r.CreatedAt.Time(), UpdatedAt: r.UpdatedAt.Time(),
	}
}

// ProductRepo implementación de ProductRepository sobre SQLite (usable con db o tx).
type ProductRepo struct {
	q sqlx.ExtContext
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q sqlx.ExtContext) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO products (`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.SKU, p.Price.String(), p.Stock, p.CategoryID, p.SupplierID,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
}

// GetBySKU obtiene un producto por SKU sin distinguir mayúsculas.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE lower(sku) = lower(?)`, sku)
}

// GetForUpdate en SQLite la transacción ya tiene la única conexión; equivale a GetByID.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, args ...interface{}) (*entity.Product, error) {
	var row productRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toEntity(), nil
}

// List lista productos por nombre aplicando los filtros.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var where []string
	var args []interface{}
	if f.CategoryID != "" {
		where = append(where, "category_id = ?")
		args = append(args, f.CategoryID)
	}
	if f.SupplierID != "" {
		where = append(where, "supplier_id = ?")
		args = append(args, f.SupplierID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		where = append(where, "(lower(name) LIKE ? OR lower(sku) LIKE ?)")
		like := "%" + strings.ToLower(s) + "%"
		args = append(args, like, like)
	}
	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name, id"
	clause, args := limitClause(f.Limit, f.Offset, args)
	return r.selectMany(ctx, query+clause, args...)
}

// ListLowStock productos con stock <= threshold, los más escasos primero.
func (r *ProductRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	return r.selectMany(ctx, `SELECT `+productColumns+` FROM products WHERE stock <= ? ORDER BY stock, name`, threshold)
}

func (r *ProductRepo) selectMany(ctx context.Context, query string, args ...interface{}) ([]*entity.Product, error) {
	var rows []productRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

// Update actualiza un producto existente. No toca stock.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE products SET name = ?, sku = ?, price = ?, category_id = ?, supplier_id = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.SKU, p.Price.String(), p.CategoryID, p.SupplierID, formatTime(p.UpdatedAt), p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija el stock (usado por el ledger dentro de su transacción).
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	res, err := r.q.ExecContext(ctx, `UPDATE products SET stock = ? WHERE id = ?`, stock, id)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// IsReferenced indica si alguna línea de venta apunta al producto.
func (r *ProductRepo) IsReferenced(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, r.q, &exists, `SELECT EXISTS (SELECT 1 FROM sale_items WHERE product_id = ?)`, id); err != nil {
		return false, fmt.Errorf("product references: %w", err)
	}
	return exists, nil
}

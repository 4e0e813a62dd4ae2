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

	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const (
	saleColumns     = `id, date, total_amount, employee_id, payment_method, is_paid, is_credit, created_at, updated_at`
	saleItemColumns = `id, sale_id, product_id, quantity, unit_price, position`
)

type saleRow struct {
	ID            string          `db:"id"`
	Date          calendarDate    `db:"date"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	EmployeeID    string          `db:"employee_id"`
	PaymentMethod *string         `db:"payment_method"`
	IsPaid        bool            `db:"is_paid"`
	IsCredit      bool            `db:"is_credit"`
	CreatedAt     timestamp       `db:"created_at"`
	UpdatedAt     timestamp       `db:"updated_at"`
}

func (r saleRow) toEntity() *entity.Sale {
	s := &entity.Sale{
		ID: r.ID, Date: r.Date.Time(), TotalAmount: r.TotalAmount, EmployeeID: r.EmployeeID,
		IsPaid: r.IsPaid, IsCredit: r.IsCredit,
		CreatedAt: r.CreatedAt.Time(), UpdatedAt: r.UpdatedAt.Time(),
	}
	if r.PaymentMethod != nil {
		pm := entity.PaymentMethod(*r.PaymentMethod)
		s.PaymentMethod = &pm
	}
	return s
}

type saleItemRow struct {
	ID        string          `db:"id"`
	SaleID    string          `db:"sale_id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Position  int             `db:"position"`
}

func (r saleItemRow) toEntity() entity.SaleItem {
	return entity.SaleItem{ID: r.ID, SaleID: r.SaleID, ProductID: r.ProductID, Quantity: r.Quantity, UnitPrice: r.UnitPrice, Position: r.Position}
}

func paymentMethodArg(pm *entity.PaymentMethod) interface{} {
	if pm == nil {
		return nil
	}
	return string(*pm)
}

// SaleRepo implementación de SaleRepository sobre SQLite.
type SaleRepo struct {
	q sqlx.ExtContext
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(q sqlx.ExtContext) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta y sus items (llamar dentro de una transacción).
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO sales (`+saleColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, formatDate(s.Date), s.TotalAmount.String(), s.EmployeeID, paymentMethodArg(s.PaymentMethod),
		s.IsPaid, s.IsCredit, formatTime(s.CreatedAt), formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return r.insertItems(ctx, s.ID, s.Items)
}

func (r *SaleRepo) insertItems(ctx context.Context, saleID string, items []entity.SaleItem) error {
	for _, it := range items {
		_, err := r.q.ExecContext(ctx, `
			INSERT INTO sale_items (`+saleItemColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
			it.ID, saleID, it.ProductID, it.Quantity, it.UnitPrice.String(), it.Position,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la venta con sus items.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var row saleRow
	if err := sqlx.GetContext(ctx, r.q, &row, `SELECT `+saleColumns+` FROM sales WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	sale := row.toEntity()
	if err := r.attachItems(ctx, []*entity.Sale{sale}); err != nil {
		return nil, err
	}
	return sale, nil
}

// GetForUpdate equivale a GetByID (conexión única).
func (r *SaleRepo) GetForUpdate(ctx context.Context, id string) (*entity.Sale, error) {
	return r.GetByID(ctx, id)
}

// List ventas más recientes primero, con sus items.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	var where []string
	var args []interface{}
	if f.From != nil {
		where = append(where, "date >= ?")
		args = append(args, formatDate(*f.From))
	}
	if f.To != nil {
		where = append(where, "date <= ?")
		args = append(args, formatDate(*f.To))
	}
	if f.EmployeeID != "" {
		where = append(where, "employee_id = ?")
		args = append(args, f.EmployeeID)
	}
	query := `SELECT ` + saleColumns + ` FROM sales`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id"
	clause, args := limitClause(f.Limit, f.Offset, args)

	var rows []saleRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query+clause, args...); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	sales := make([]*entity.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, row.toEntity())
	}
	if err := r.attachItems(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

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
	query, args, err := sqlx.In(`SELECT `+saleItemColumns+` FROM sale_items WHERE sale_id IN (?) ORDER BY sale_id, position`, ids)
	if err != nil {
		return fmt.Errorf("sale items query: %w", err)
	}
	var rows []saleItemRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, r.q.Rebind(query), args...); err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	for _, row := range rows {
		if s, ok := byID[row.SaleID]; ok {
			s.Items = append(s.Items, row.toEntity())
		}
	}
	return nil
}

// ReplaceItems borra los items actuales e inserta los nuevos.
func (r *SaleRepo) ReplaceItems(ctx context.Context, saleID string, items []entity.SaleItem) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id = ?`, saleID); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return r.insertItems(ctx, saleID, items)
}

// Update persiste total, flags de pago y updated_at.
func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE sales SET total_amount = ?, payment_method = ?, is_paid = ?, is_credit = ?, updated_at = ?
		WHERE id = ?`,
		s.TotalAmount.String(), paymentMethodArg(s.PaymentMethod), s.IsPaid, s.IsCredit, formatTime(s.UpdatedAt), s.ID,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina la venta; items y crédito caen en cascada.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// CountByDate ventas registradas en la fecha.
func (r *SaleRepo) CountByDate(ctx context.Context, date time.Time) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.q, &n, `SELECT COUNT(*) FROM sales WHERE date = ?`, formatDate(date)); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

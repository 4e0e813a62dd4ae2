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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, name, role, phone, status, password_hash, created_at, updated_at`

type employeeRow struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	Phone        string    `db:"phone"`
	Status       string    `db:"status"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    timestamp `db:"created_at"`
	UpdatedAt    timestamp `db:"updated_at"`
}

func (r employeeRow) toEntity() *entity.Employee {
	return &entity.Employee{
		ID:           r.ID,
		Name:         r.Name,
		Role:         r.Role,
		Phone:        r.Phone,
		Status:       r.Status,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.Time(),
		UpdatedAt:    r.UpdatedAt.Time(),
	}
}

// EmployeeRepo implementación de EmployeeRepository sobre SQLite (usable con db o tx).
type EmployeeRepo struct {
	q sqlx.ExtContext
}

// NewEmployeeRepository construye el adaptador. Pasar *sqlx.DB o *sqlx.Tx.
func NewEmployeeRepository(q sqlx.ExtContext) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO employees (`+employeeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Role, e.Phone, e.Status, e.PasswordHash, formatTime(e.CreatedAt), formatTime(e.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
}

// GetByPhone obtiene un empleado por teléfono.
func (r *EmployeeRepo) GetByPhone(ctx context.Context, phone string) (*entity.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE phone = ?`, phone)
}

// GetByRole obtiene el empleado más antiguo con el rol dado.
func (r *EmployeeRepo) GetByRole(ctx context.Context, role string) (*entity.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE role = ? ORDER BY created_at, id LIMIT 1`, role)
}

func (r *EmployeeRepo) getOne(ctx context.Context, query string, args ...interface{}) (*entity.Employee, error) {
	var row employeeRow
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return row.toEntity(), nil
}

// Count total de empleados registrados.
func (r *EmployeeRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.q, &n, `SELECT COUNT(*) FROM employees`); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

// List lista empleados por antigüedad.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	clause, args := limitClause(limit, offset, nil)
	var rows []employeeRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, `SELECT `+employeeColumns+` FROM employees ORDER BY created_at, id`+clause, args...); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	list := make([]*entity.Employee, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

// Update actualiza nombre, rol, teléfono, estado y hash.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE employees SET name = ?, role = ?, phone = ?, status = ?, password_hash = ?, updated_at = ?
		WHERE id = ?`,
		e.Name, e.Role, e.Phone, e.Status, e.PasswordHash, formatTime(e.UpdatedAt), e.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// HasActivity indica si el empleado figura en ventas, créditos o apertura/cierre de días.
func (r *EmployeeRepo) HasActivity(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, r.q, &exists, `
		SELECT EXISTS (SELECT 1 FROM sales WHERE employee_id = ?)
		    OR EXISTS (SELECT 1 FROM credits WHERE employee_id = ?)
		    OR EXISTS (SELECT 1 FROM days WHERE opened_by = ? OR closed_by = ?)`,
		id, id, id, id,
	)
	if err != nil {
		return false, fmt.Errorf("employee activity: %w", err)
	}
	return exists, nil
}

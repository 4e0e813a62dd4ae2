package repository

import (
	"context"

	"github.com/majidtech25/my-project02/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Las búsquedas sin resultado devuelven (nil, nil).
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Employee, error)
	// GetByRole devuelve el empleado más antiguo con ese rol.
	GetByRole(ctx context.Context, role string) (*entity.Employee, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id string) error
	// HasActivity indica si el empleado tiene ventas o créditos a su nombre.
	HasActivity(ctx context.Context, id string) (bool, error)
}

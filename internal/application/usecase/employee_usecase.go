package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

// EmployeeUseCase reglas de negocio de empleados: un solo employer y un solo manager,
// el primer employer es intocable y no se borra a quien tiene historial.
type EmployeeUseCase struct {
	tx    repository.TxRunner
	repos repository.Repos
	log   zerolog.Logger
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(tx repository.TxRunner, repos repository.Repos, log zerolog.Logger) *EmployeeUseCase {
	return &EmployeeUseCase{tx: tx, repos: repos, log: log}
}

// NeedsBootstrap indica que aún no existe ningún empleado.
func (uc *EmployeeUseCase) NeedsBootstrap(ctx context.Context) (bool, error) {
	n, err := uc.repos.Employees.Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Bootstrap crea el employer inicial. Falla con ErrConflict si ya hay empleados.
func (uc *EmployeeUseCase) Bootstrap(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	in.Role = entity.RoleEmployer
	var created *entity.Employee
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		n, err := r.Employees.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: el sistema ya tiene empleados", domain.ErrConflict)
		}
		created, err = createEmployee(ctx, r, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("employee_id", created.ID).Msg("employer inicial creado")
	return dto.FromEmployee(created), nil
}

// Create crea un empleado respetando la unicidad de employer y manager.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	var created *entity.Employee
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		created, err = createEmployee(ctx, r, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("employee_id", created.ID).Str("role", created.Role).Msg("empleado creado")
	return dto.FromEmployee(created), nil
}

func createEmployee(ctx context.Context, r repository.Repos, in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	name := strings.Join(strings.Fields(in.Name), " ")
	if err := checkLength("name", name, 2, 100); err != nil {
		return nil, err
	}
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, in.Role)
	}
	phone, err := normalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if len(in.Password) < minPasswordLength {
		return nil, errPasswordTooShort
	}
	if err := ensureRoleFree(ctx, r.Employees, role, ""); err != nil {
		return nil, err
	}
	if existing, err := r.Employees.GetByPhone(ctx, phone); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un empleado con ese teléfono", domain.ErrDuplicate)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	e := &entity.Employee{
		ID:           uuid.New().String(),
		Name:         name,
		Role:         role,
		Phone:        phone,
		Status:       entity.EmployeeActive,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.Employees.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ensureRoleFree falla con ErrRoleTaken si el rol es único y otro empleado (distinto de selfID) lo tiene.
func ensureRoleFree(ctx context.Context, employees repository.EmployeeRepository, role, selfID string) error {
	if !entity.UniqueRole(role) {
		return nil
	}
	holder, err := employees.GetByRole(ctx, role)
	if err != nil {
		return err
	}
	if holder != nil && holder.ID != selfID {
		return fmt.Errorf("%w: %s", domain.ErrRoleTaken, role)
	}
	return nil
}

// isFirstEmployer indica si e es el employer más antiguo del sistema.
func isFirstEmployer(ctx context.Context, employees repository.EmployeeRepository, e *entity.Employee) (bool, error) {
	if e.Role != entity.RoleEmployer {
		return false, nil
	}
	first, err := employees.GetByRole(ctx, entity.RoleEmployer)
	if err != nil {
		return false, err
	}
	return first != nil && first.ID == e.ID, nil
}

// GetByID obtiene un empleado.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.repos.Employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: empleado %s", domain.ErrNotFound, id)
	}
	return dto.FromEmployee(e), nil
}

// List empleados por antigüedad.
func (uc *EmployeeUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	limit, offset := pageOrDefault(page.Limit, page.Offset)
	list, err := uc.repos.Employees.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.EmployeeListResponse{Items: make([]dto.EmployeeResponse, 0, len(list)), Page: dto.PageResponse{Limit: limit, Offset: offset}}
	for _, e := range list {
		out.Items = append(out.Items, *dto.FromEmployee(e))
	}
	return out, nil
}

// Update aplica los campos presentes. El primer employer no puede cambiar de rol ni desactivarse.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	var updated *entity.Employee
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		e, err := r.Employees.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("%w: empleado %s", domain.ErrNotFound, id)
		}
		first, err := isFirstEmployer(ctx, r.Employees, e)
		if err != nil {
			return err
		}
		if in.Name != nil {
			name := strings.Join(strings.Fields(*in.Name), " ")
			if err := checkLength("name", name, 2, 100); err != nil {
				return err
			}
			e.Name = name
		}
		if in.Role != nil {
			role := strings.ToLower(strings.TrimSpace(*in.Role))
			if !entity.ValidRole(role) {
				return fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, *in.Role)
			}
			if first && role != e.Role {
				return fmt.Errorf("%w: el rol del employer inicial no se puede cambiar", domain.ErrProtectedEmployee)
			}
			if err := ensureRoleFree(ctx, r.Employees, role, e.ID); err != nil {
				return err
			}
			e.Role = role
		}
		if in.Phone != nil {
			phone, err := normalizePhone(*in.Phone)
			if err != nil {
				return err
			}
			if other, err := r.Employees.GetByPhone(ctx, phone); err != nil {
				return err
			} else if other != nil && other.ID != e.ID {
				return fmt.Errorf("%w: ya existe un empleado con ese teléfono", domain.ErrDuplicate)
			}
			e.Phone = phone
		}
		if in.Status != nil {
			status := strings.ToLower(strings.TrimSpace(*in.Status))
			if status != entity.EmployeeActive && status != entity.EmployeeInactive {
				return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, *in.Status)
			}
			if first && status != entity.EmployeeActive {
				return fmt.Errorf("%w: el employer inicial no se puede desactivar", domain.ErrProtectedEmployee)
			}
			e.Status = status
		}
		if in.Password != nil {
			if len(*in.Password) < minPasswordLength {
				return errPasswordTooShort
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			e.PasswordHash = string(hash)
		}
		e.UpdatedAt = time.Now()
		if err := r.Employees.Update(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("employee_id", updated.ID).Msg("empleado actualizado")
	return dto.FromEmployee(updated), nil
}

// Delete elimina un empleado sin historial. Employer y manager no se eliminan.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	err := uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		e, err := r.Employees.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("%w: empleado %s", domain.ErrNotFound, id)
		}
		if entity.UniqueRole(e.Role) {
			return fmt.Errorf("%w: no se eliminan cuentas employer ni manager", domain.ErrProtectedEmployee)
		}
		busy, err := r.Employees.HasActivity(ctx, id)
		if err != nil {
			return err
		}
		if busy {
			return fmt.Errorf("%w: el empleado tiene ventas, créditos o jornadas registradas", domain.ErrInUse)
		}
		return r.Employees.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("employee_id", id).Msg("empleado eliminado")
	return nil
}

// ChangePassword cambia la contraseña propia verificando la actual.
func (uc *EmployeeUseCase) ChangePassword(ctx context.Context, id string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < minPasswordLength {
		return errPasswordTooShort
	}
	return uc.tx.Run(ctx, func(ctx context.Context, r repository.Repos) error {
		e, err := r.Employees.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("%w: empleado %s", domain.ErrNotFound, id)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return fmt.Errorf("%w: la contraseña actual no coincide", domain.ErrUnauthorized)
			}
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		e.PasswordHash = string(hash)
		e.UpdatedAt = time.Now()
		return r.Employees.Update(ctx, e)
	})
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

var maxSupplierBalance = decimal.NewFromInt(1_000_000)

// SupplierUseCase CRUD de proveedores. El contacto se normaliza al formato keniano +2547XXXXXXXX.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func validBalance(b decimal.Decimal) error {
	if b.IsNegative() || b.GreaterThan(maxSupplierBalance) {
		return fmt.Errorf("%w: el saldo debe estar entre 0 y 1.000.000", domain.ErrInvalidInput)
	}
	return nil
}

func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := titleName(in.Name)
	if err := checkLength("name", name, 2, 150); err != nil {
		return nil, err
	}
	contact, err := normalizeKenyanContact(in.Contact)
	if err != nil {
		return nil, err
	}
	balance := decimal.Zero
	if in.Balance != nil {
		balance = *in.Balance
	}
	if err := validBalance(balance); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el proveedor %q ya existe", domain.ErrDuplicate, name)
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		Contact:   contact,
		Email:     strings.TrimSpace(in.Email),
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return dto.FromSupplier(s), nil
}

func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	return dto.FromSupplier(s), nil
}

func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SupplierListResponse, error) {
	limit, offset := pageOrDefault(page.Limit, page.Offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SupplierListResponse{Items: make([]dto.SupplierResponse, 0, len(list)), Page: dto.PageResponse{Limit: limit, Offset: offset}}
	for _, s := range list {
		out.Items = append(out.Items, *dto.FromSupplier(s))
	}
	return out, nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		name := titleName(*in.Name)
		if err := checkLength("name", name, 2, 150); err != nil {
			return nil, err
		}
		other, err := uc.repo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != s.ID {
			return nil, fmt.Errorf("%w: el proveedor %q ya existe", domain.ErrDuplicate, name)
		}
		s.Name = name
	}
	if in.Contact != nil {
		contact, err := normalizeKenyanContact(*in.Contact)
		if err != nil {
			return nil, err
		}
		s.Contact = contact
	}
	if in.Email != nil {
		s.Email = strings.TrimSpace(*in.Email)
	}
	if in.Balance != nil {
		if err := validBalance(*in.Balance); err != nil {
			return nil, err
		}
		s.Balance = *in.Balance
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return dto.FromSupplier(s), nil
}

// Delete elimina el proveedor si ningún producto lo referencia.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, id)
	}
	used, err := uc.repo.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return fmt.Errorf("%w: el proveedor tiene productos", domain.ErrInUse)
	}
	return uc.repo.Delete(ctx, id)
}

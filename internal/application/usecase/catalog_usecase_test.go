package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/application/usecase"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/testutil"
)

func TestCategory_NombreUnicoNormalizado(t *testing.T) {
	env := testutil.New(t)
	uc := usecase.NewCategoryUseCase(env.Repos.Categories)
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CategoryRequest{Name: "  bebidas   frías "})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas Frías", c.Name)

	_, err = uc.Create(ctx, dto.CategoryRequest{Name: "BEBIDAS FRÍAS"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CategoryRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	other, err := uc.Create(ctx, dto.CategoryRequest{Name: "Granos"})
	require.NoError(t, err)
	_, err = uc.Update(ctx, other.ID, dto.CategoryRequest{Name: "bebidas frías"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	renamed, err := uc.Update(ctx, other.ID, dto.CategoryRequest{Name: "granos y cereales"})
	require.NoError(t, err)
	assert.Equal(t, "Granos Y Cereales", renamed.Name)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCategory_DeleteConProductos(t *testing.T) {
	env := testutil.New(t)
	uc := usecase.NewCategoryUseCase(env.Repos.Categories)
	ctx := context.Background()
	c := env.Category(t, "Granos")
	env.Product(t, "Rice 2kg", "RIC-2", "4.50", 3, &c.ID)

	assert.ErrorIs(t, uc.Delete(ctx, c.ID), domain.ErrInUse)

	empty := env.Category(t, "Limpieza")
	require.NoError(t, uc.Delete(ctx, empty.ID))
	_, err := uc.GetByID(ctx, empty.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplier_ContactoYSaldo(t *testing.T) {
	env := testutil.New(t)
	uc := usecase.NewSupplierUseCase(env.Repos.Suppliers)
	ctx := context.Background()

	s, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "mombasa millers", Contact: "0712345678"})
	require.NoError(t, err)
	assert.Equal(t, "Mombasa Millers", s.Name)
	assert.Equal(t, "+254712345678", s.Contact)
	assert.True(t, s.Balance.IsZero())

	_, err = uc.Create(ctx, dto.CreateSupplierRequest{Name: "Mombasa Millers"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateSupplierRequest{Name: "Kisumu Foods", Contact: "12345"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negative := decimal.NewFromInt(-1)
	_, err = uc.Create(ctx, dto.CreateSupplierRequest{Name: "Kisumu Foods", Balance: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	balance := decimal.RequireFromString("1500.50")
	updated, err := uc.Update(ctx, s.ID, dto.UpdateSupplierRequest{Balance: &balance, Contact: testutil.Ptr("+254798765432")})
	require.NoError(t, err)
	assert.Equal(t, "1500.5", updated.Balance.String())
	assert.Equal(t, "+254798765432", updated.Contact)

	page, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestSupplier_DeleteConProductos(t *testing.T) {
	env := testutil.New(t)
	uc := usecase.NewSupplierUseCase(env.Repos.Suppliers)
	products := usecase.NewProductUseCase(env.Tx, env.Repos, env.Log)
	ctx := context.Background()
	s := env.Supplier(t, "Mombasa Millers", "0")

	_, err := products.Create(ctx, dto.CreateProductRequest{
		Name: "Maize Flour", SKU: "mf-2", Price: decimal.NewFromInt(2), Stock: 1, SupplierID: &s.ID,
	})
	require.NoError(t, err)
	assert.ErrorIs(t, uc.Delete(ctx, s.ID), domain.ErrInUse)
	assert.ErrorIs(t, uc.Delete(ctx, "no-existe"), domain.ErrNotFound)
}

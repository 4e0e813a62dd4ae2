package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
	"github.com/majidtech25/my-project02/internal/testutil"
)

func TestEmployeeRepo_TelefonoUnico(t *testing.T) {
	env := testutil.New(t)
	env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")

	dup := &entity.Employee{
		ID: uuid.New().String(), Name: "Otra", Role: entity.RoleEmployee, Phone: "+254700000001",
		Status: entity.EmployeeActive, PasswordHash: "x", CreatedAt: env.Now, UpdatedAt: env.Now,
	}
	err := env.Repos.Employees.Create(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	missing, err := env.Repos.Employees.GetByPhone(context.Background(), "+254799999999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDayRepo_UnSoloDiaAbierto(t *testing.T) {
	env := testutil.New(t)
	ctx := context.Background()
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	first := env.OpenDay(t, boss.ID)

	env.AdvanceDays(1)
	second := &entity.Day{
		ID: uuid.New().String(), Date: env.Today(), IsOpen: true, OpenedBy: boss.ID,
		CreatedAt: env.Now, UpdatedAt: env.Now,
	}
	assert.Error(t, env.Repos.Days.Create(ctx, second))

	open, err := env.Repos.Days.GetOpen(ctx)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, first.ID, open.ID)
	assert.True(t, open.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))

	byDate, err := env.Repos.Days.GetByDate(ctx, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, byDate)
	assert.Equal(t, first.ID, byDate.ID)
}

func TestSaleRepo_ItemsYFiltros(t *testing.T) {
	env := testutil.New(t)
	ctx := context.Background()
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	rice := env.Product(t, "Rice 2kg", "RIC-2", "4.50", 10, nil)
	salt := env.Product(t, "Salt", "SAL-1", "1.00", 10, nil)

	newSale := func(date time.Time, items ...entity.SaleItem) *entity.Sale {
		id := uuid.New().String()
		total := decimal.Zero
		for i := range items {
			items[i].ID, items[i].SaleID, items[i].Position = uuid.New().String(), id, i+1
			total = total.Add(items[i].Subtotal())
		}
		cash := entity.PaymentCash
		s := &entity.Sale{
			ID: id, Date: date, TotalAmount: total, EmployeeID: boss.ID,
			PaymentMethod: &cash, IsPaid: true, Items: items, CreatedAt: env.Now, UpdatedAt: env.Now,
		}
		require.NoError(t, env.Repos.Sales.Create(ctx, s))
		return s
	}
	d15 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	d16 := d15.AddDate(0, 0, 1)
	s1 := newSale(d15,
		entity.SaleItem{ProductID: salt.ID, Quantity: 1, UnitPrice: salt.Price},
		entity.SaleItem{ProductID: rice.ID, Quantity: 2, UnitPrice: rice.Price},
	)
	newSale(d16, entity.SaleItem{ProductID: rice.ID, Quantity: 1, UnitPrice: rice.Price})

	got, err := env.Repos.Sales.GetByID(ctx, s1.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, salt.ID, got.Items[0].ProductID)
	assert.Equal(t, rice.ID, got.Items[1].ProductID)
	assert.Equal(t, "10", got.TotalAmount.String())
	require.NotNil(t, got.PaymentMethod)
	assert.Equal(t, entity.PaymentCash, *got.PaymentMethod)

	onlyFirst, err := env.Repos.Sales.List(ctx, repository.SaleFilter{From: &d15, To: &d15})
	require.NoError(t, err)
	require.Len(t, onlyFirst, 1)
	assert.Equal(t, s1.ID, onlyFirst[0].ID)
	assert.Len(t, onlyFirst[0].Items, 2)

	all, err := env.Repos.Sales.List(ctx, repository.SaleFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	n, err := env.Repos.Sales.CountByDate(ctx, d16)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	used, err := env.Repos.Products.IsReferenced(ctx, salt.ID)
	require.NoError(t, err)
	assert.True(t, used)
}

func TestCreditRepo_UnoPorVenta(t *testing.T) {
	env := testutil.New(t)
	ctx := context.Background()
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	sale := &entity.Sale{
		ID: uuid.New().String(), Date: env.Today(), TotalAmount: decimal.NewFromInt(5), EmployeeID: boss.ID,
		IsCredit: true, CreatedAt: env.Now, UpdatedAt: env.Now,
	}
	require.NoError(t, env.Repos.Sales.Create(ctx, sale))

	newCredit := func() *entity.Credit {
		return &entity.Credit{
			ID: uuid.New().String(), SaleID: sale.ID, EmployeeID: boss.ID, Amount: sale.TotalAmount,
			Status: entity.CreditOpen, CreatedAt: env.Now, UpdatedAt: env.Now,
		}
	}
	require.NoError(t, env.Repos.Credits.Create(ctx, newCredit()))
	assert.ErrorIs(t, env.Repos.Credits.Create(ctx, newCredit()), domain.ErrDuplicate)

	open, err := env.Repos.Credits.CountOpenBySaleDate(ctx, env.Today())
	require.NoError(t, err)
	assert.Equal(t, 1, open)
}

func TestProductRepo_StockNoNegativo(t *testing.T) {
	env := testutil.New(t)
	p := env.Product(t, "Salt", "SAL-1", "1.00", 1, nil)

	assert.Error(t, env.Repos.Products.UpdateStock(context.Background(), p.ID, -1))
	assert.Equal(t, 1, env.Stock(t, p.ID))

	low, err := env.Repos.Products.ListLowStock(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, low, 1)
}

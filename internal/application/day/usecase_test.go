package day_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majidtech25/my-project02/internal/application/day"
	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/application/sales"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/testutil"
)

func newDayUC(env *testutil.Env) *day.DayUseCase {
	return day.NewDayUseCase(env.Tx, env.Repos, env.Clock(), env.Log)
}

func TestOpenDay_CreaElDiaDeHoy(t *testing.T) {
	env := testutil.New(t)
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	uc := newDayUC(env)

	out, err := uc.OpenDay(context.Background(), boss.ID)
	require.NoError(t, err)
	assert.True(t, out.IsOpen)
	assert.Equal(t, "2024-03-15", out.Date)
	assert.Equal(t, boss.ID, out.OpenedBy)

	cur, err := uc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, out.ID, cur.ID)
}

func TestOpenDay_Reglas(t *testing.T) {
	env := testutil.New(t)
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	uc := newDayUC(env)
	ctx := context.Background()

	_, err := uc.OpenDay(ctx, boss.ID)
	require.NoError(t, err)

	_, err = uc.OpenDay(ctx, boss.ID)
	assert.ErrorIs(t, err, domain.ErrDayAlreadyOpen)

	_, err = uc.CloseDay(ctx, boss.ID)
	require.NoError(t, err)

	_, err = uc.OpenDay(ctx, boss.ID)
	assert.ErrorIs(t, err, domain.ErrDayAlreadyExists, "un día cerrado no se reabre")

	env.AdvanceDays(1)
	_, err = uc.OpenDay(ctx, boss.ID)
	assert.NoError(t, err)
}

func TestOpenDay_EmpleadoInactivoOInexistente(t *testing.T) {
	env := testutil.New(t)
	mgr := env.Employee(t, "Brian", entity.RoleManager, "+254700000002")
	mgr.Status = entity.EmployeeInactive
	require.NoError(t, env.Repos.Employees.Update(context.Background(), mgr))
	uc := newDayUC(env)

	_, err := uc.OpenDay(context.Background(), mgr.ID)
	assert.ErrorIs(t, err, domain.ErrInactiveEmployee)

	_, err = uc.OpenDay(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCloseDay_SinDiaAbierto(t *testing.T) {
	env := testutil.New(t)
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")

	_, err := newDayUC(env).CloseDay(context.Background(), boss.ID)
	assert.ErrorIs(t, err, domain.ErrNoOpenDay)
}

func TestCloseDay_ConCreditosAbiertos(t *testing.T) {
	env := testutil.New(t)
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	p := env.Product(t, "Sugar", "SUG-1", "10.00", 5, nil)
	uc := newDayUC(env)
	ctx := context.Background()

	_, err := uc.OpenDay(ctx, boss.ID)
	require.NoError(t, err)
	saleUC := sales.NewSaleUseCase(env.Tx, env.Repos, env.Clock(), env.Log)
	_, err = saleUC.CreateSale(ctx, boss.ID, dto.CreateSaleRequest{
		Items:    []dto.SaleItemRequest{{ProductID: p.ID, Quantity: 1}},
		IsCredit: true,
	})
	require.NoError(t, err)

	_, err = uc.CloseDay(ctx, boss.ID)
	assert.ErrorIs(t, err, domain.ErrUnclearedCredits)

	cur, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.True(t, cur.IsOpen, "el día sigue abierto tras el rechazo")
}

func TestCloseDay_RegistraQuienCierra(t *testing.T) {
	env := testutil.New(t)
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	mgr := env.Employee(t, "Brian", entity.RoleManager, "+254700000002")
	uc := newDayUC(env)
	ctx := context.Background()

	opened, err := uc.OpenDay(ctx, boss.ID)
	require.NoError(t, err)
	out, err := uc.CloseDay(ctx, mgr.ID)
	require.NoError(t, err)

	assert.False(t, out.IsOpen)
	require.NotNil(t, out.ClosedBy)
	assert.Equal(t, mgr.ID, *out.ClosedBy)

	_, err = uc.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrNoOpenDay)

	got, err := uc.GetByID(ctx, opened.ID)
	require.NoError(t, err)
	assert.False(t, got.IsOpen)
}

func TestEnsureOpen_DiaDeAyerNoSirve(t *testing.T) {
	env := testutil.New(t)
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	env.OpenDay(t, boss.ID)
	ctx := context.Background()

	_, err := day.EnsureOpen(ctx, env.Repos.Days, env.Now)
	require.NoError(t, err)

	env.AdvanceDays(1)
	_, err = day.EnsureOpen(ctx, env.Repos.Days, env.Now)
	assert.ErrorIs(t, err, domain.ErrNoOpenDay)
}

func TestDeleteDay(t *testing.T) {
	env := testutil.New(t)
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	p := env.Product(t, "Sugar", "SUG-1", "10.00", 5, nil)
	uc := newDayUC(env)
	ctx := context.Background()

	err := uc.DeleteDay(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	d, err := uc.OpenDay(ctx, boss.ID)
	require.NoError(t, err)
	saleUC := sales.NewSaleUseCase(env.Tx, env.Repos, env.Clock(), env.Log)
	sale, err := saleUC.CreateSale(ctx, boss.ID, dto.CreateSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: p.ID, Quantity: 1}},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	err = uc.DeleteDay(ctx, d.ID)
	assert.ErrorIs(t, err, domain.ErrDayHasSales)

	require.NoError(t, saleUC.DeleteSale(ctx, sale.ID))
	require.NoError(t, uc.DeleteDay(ctx, d.ID))

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

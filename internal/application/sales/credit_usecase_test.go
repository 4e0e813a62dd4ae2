package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
)

// Escenario C: crédito abierto bloquea el cierre hasta saldarlo.
func TestCredito_CicloCompletoConCierre(t *testing.T) {
	f := newFixture(t)
	f.openDay(t)
	ctx := context.Background()

	sale := f.sell(t, 2, true)
	require.NotNil(t, sale.Credit)
	assert.True(t, sale.Credit.Amount.Equal(sale.TotalAmount))

	_, err := f.days.CloseDay(ctx, f.boss.ID)
	assert.ErrorIs(t, err, domain.ErrUnclearedCredits)

	cleared, err := f.credits.ClearCredit(ctx, sale.Credit.ID, dto.ClearCreditRequest{PaymentMethod: "cash"})
	require.NoError(t, err)
	assert.Equal(t, entity.CreditCleared, cleared.Status)

	got, err := f.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPaid)
	assert.False(t, got.IsCredit)
	assert.Equal(t, "cash", *got.PaymentMethod)

	_, err = f.days.CloseDay(ctx, f.boss.ID)
	assert.NoError(t, err)
}

func TestClearCredit_DosVecesFallaSinCambios(t *testing.T) {
	f := newFixture(t)
	f.openDay(t)
	ctx := context.Background()
	sale := f.sell(t, 1, true)

	_, err := f.credits.ClearCredit(ctx, sale.Credit.ID, dto.ClearCreditRequest{PaymentMethod: "card"})
	require.NoError(t, err)
	before, err := f.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)

	_, err = f.credits.ClearCredit(ctx, sale.Credit.ID, dto.ClearCreditRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	after, err := f.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, *before.PaymentMethod, *after.PaymentMethod)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestClearCredit_MetodoDePago(t *testing.T) {
	f := newFixture(t)
	f.openDay(t)
	ctx := context.Background()
	sale := f.sell(t, 1, true)

	_, err := f.credits.ClearCredit(ctx, sale.Credit.ID, dto.ClearCreditRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.credits.ClearCredit(ctx, sale.Credit.ID, dto.ClearCreditRequest{PaymentMethod: "barter"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.credits.ClearCredit(ctx, "no-existe", dto.ClearCreditRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	c, err := f.credits.GetByID(ctx, sale.Credit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CreditOpen, c.Status)
}

func TestCreateCredit_SobreVentaPagada(t *testing.T) {
	f := newFixture(t)
	f.openDay(t)
	ctx := context.Background()
	sale := f.sell(t, 2, false)

	credit, err := f.credits.CreateCredit(ctx, f.boss.ID, dto.CreateCreditRequest{SaleID: sale.ID})
	require.NoError(t, err)
	assert.Equal(t, f.boss.ID, credit.EmployeeID)
	assert.True(t, credit.Amount.Equal(sale.TotalAmount))

	got, err := f.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, got.IsCredit)
	assert.False(t, got.IsPaid)
	assert.Nil(t, got.PaymentMethod)

	_, err = f.credits.CreateCredit(ctx, f.boss.ID, dto.CreateCreditRequest{SaleID: sale.ID})
	assert.ErrorIs(t, err, domain.ErrDuplicateCredit)

	_, err = f.credits.CreateCredit(ctx, f.boss.ID, dto.CreateCreditRequest{SaleID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRevokeCredit(t *testing.T) {
	f := newFixture(t)
	f.openDay(t)
	ctx := context.Background()
	sale := f.sell(t, 1, true)

	require.NoError(t, f.credits.RevokeCredit(ctx, sale.Credit.ID))

	got, err := f.sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPaid)
	assert.False(t, got.IsCredit)
	assert.Nil(t, got.Credit)
	assert.Equal(t, 4, f.env.Stock(t, f.sugar.ID), "revocar no devuelve stock")

	err = f.credits.RevokeCredit(ctx, sale.Credit.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRevokeCredit_Saldado(t *testing.T) {
	f := newFixture(t)
	f.openDay(t)
	ctx := context.Background()
	sale := f.sell(t, 1, true)
	_, err := f.credits.ClearCredit(ctx, sale.Credit.ID, dto.ClearCreditRequest{PaymentMethod: "cash"})
	require.NoError(t, err)

	err = f.credits.RevokeCredit(ctx, sale.Credit.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Escenario E: un crédito sobre una venta de un día cerrado no se revoca.
func TestRevokeCredit_DiaCerrado(t *testing.T) {
	f := newFixture(t)
	f.openDay(t)
	ctx := context.Background()
	sale := f.sell(t, 1, false)
	_, err := f.days.CloseDay(ctx, f.boss.ID)
	require.NoError(t, err)

	f.env.AdvanceDays(1)
	credit, err := f.credits.CreateCredit(ctx, f.boss.ID, dto.CreateCreditRequest{SaleID: sale.ID})
	require.NoError(t, err)

	err = f.credits.RevokeCredit(ctx, credit.ID)
	assert.ErrorIs(t, err, domain.ErrDayClosed)

	c, err := f.credits.GetByID(ctx, credit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CreditOpen, c.Status)
}

func TestListCredits_PorEstado(t *testing.T) {
	f := newFixture(t)
	f.openDay(t)
	ctx := context.Background()
	a := f.sell(t, 1, true)
	f.sell(t, 1, true)
	_, err := f.credits.ClearCredit(ctx, a.Credit.ID, dto.ClearCreditRequest{PaymentMethod: "cash"})
	require.NoError(t, err)

	open, err := f.credits.List(ctx, dto.CreditQuery{Status: entity.CreditOpen})
	require.NoError(t, err)
	assert.Len(t, open.Items, 1)

	all, err := f.credits.List(ctx, dto.CreditQuery{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	_, err = f.credits.List(ctx, dto.CreditQuery{Status: "overdue"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majidtech25/my-project02/internal/application/stock"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/testutil"
)

func TestReserve_DescuentaYCalculaTotal(t *testing.T) {
	env := testutil.New(t)
	sugar := env.Product(t, "Sugar 1kg", "SUG-1", "10.00", 5, nil)
	milk := env.Product(t, "Milk 500ml", "MLK-1", "2.50", 10, nil)

	res, err := stock.Reserve(context.Background(), env.Repos.Products, []stock.Line{
		{ProductID: milk.ID, Quantity: 4},
		{ProductID: sugar.ID, Quantity: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "30", res.Total.String())
	require.Len(t, res.Items, 2)
	assert.Equal(t, milk.ID, res.Items[0].ProductID, "los items conservan el orden de la solicitud")
	assert.Equal(t, 1, res.Items[0].Position)
	assert.Equal(t, "2.5", res.Items[0].UnitPrice.String())
	assert.Equal(t, 3, env.Stock(t, sugar.ID))
	assert.Equal(t, 6, env.Stock(t, milk.ID))
}

func TestReserve_AgregaLineasDelMismoProducto(t *testing.T) {
	env := testutil.New(t)
	p := env.Product(t, "Bread", "BRD-1", "1.00", 3, nil)

	_, err := stock.Reserve(context.Background(), env.Repos.Products, []stock.Line{
		{ProductID: p.ID, Quantity: 2},
		{ProductID: p.ID, Quantity: 2},
	})

	var se *domain.StockError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Available)
	assert.Equal(t, 4, se.Requested)
	assert.Equal(t, 3, env.Stock(t, p.ID), "no se escribe nada si una línea falla")
}

func TestReserve_NoEscribeSiOtraLineaFalla(t *testing.T) {
	env := testutil.New(t)
	ok := env.Product(t, "Rice", "RIC-1", "3.00", 10, nil)
	short := env.Product(t, "Oil", "OIL-1", "7.00", 1, nil)

	_, err := stock.Reserve(context.Background(), env.Repos.Products, []stock.Line{
		{ProductID: ok.ID, Quantity: 5},
		{ProductID: short.ID, Quantity: 2},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, env.Stock(t, ok.ID))
	assert.Equal(t, 1, env.Stock(t, short.ID))
}

func TestReserve_EntradasInvalidas(t *testing.T) {
	env := testutil.New(t)
	p := env.Product(t, "Salt", "SLT-1", "1.00", 3, nil)
	ctx := context.Background()

	_, err := stock.Reserve(ctx, env.Repos.Products, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = stock.Reserve(ctx, env.Repos.Products, []stock.Line{{ProductID: p.ID, Quantity: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = stock.Reserve(ctx, env.Repos.Products, []stock.Line{{ProductID: "no-existe", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "no-existe")
}

func TestRelease_DevuelveStock(t *testing.T) {
	env := testutil.New(t)
	p := env.Product(t, "Soap", "SOP-1", "1.50", 4, nil)
	ctx := context.Background()

	res, err := stock.Reserve(ctx, env.Repos.Products, []stock.Line{{ProductID: p.ID, Quantity: 4}})
	require.NoError(t, err)
	assert.Equal(t, 0, env.Stock(t, p.ID))

	require.NoError(t, stock.Release(ctx, env.Repos.Products, res.Items))
	assert.Equal(t, 4, env.Stock(t, p.ID))
}

func TestReplace_PermiteReusarElStockDevuelto(t *testing.T) {
	env := testutil.New(t)
	p := env.Product(t, "Tea", "TEA-1", "4.00", 3, nil)
	ctx := context.Background()

	res, err := stock.Reserve(ctx, env.Repos.Products, []stock.Line{{ProductID: p.ID, Quantity: 2}})
	require.NoError(t, err)

	// 1 en stock + 2 devueltos alcanzan para 3
	res, err = stock.Replace(ctx, env.Repos.Products, res.Items, []stock.Line{{ProductID: p.ID, Quantity: 3}})
	require.NoError(t, err)
	assert.Equal(t, "12", res.Total.String())
	assert.Equal(t, 0, env.Stock(t, p.ID))
}

func TestReceive(t *testing.T) {
	env := testutil.New(t)
	p := env.Product(t, "Flour", "FLR-1", "2.00", 1, nil)
	ctx := context.Background()

	got, err := stock.Receive(ctx, env.Repos.Products, p.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock)
	assert.Equal(t, 10, env.Stock(t, p.ID))

	_, err = stock.Receive(ctx, env.Repos.Products, p.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = stock.Receive(ctx, env.Repos.Products, "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

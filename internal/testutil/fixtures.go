// Package testutil arma una base SQLite en memoria con datos mínimos para los tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
	"github.com/majidtech25/my-project02/internal/infrastructure/sqlite"
)

// Password contraseña de todos los empleados sembrados.
const Password = "secret123"

// Env base de datos en memoria con sus repositorios y un reloj manipulable.
type Env struct {
	Repos repository.Repos
	Tx    repository.TxRunner
	Now   time.Time
	Log   zerolog.Logger
}

// New abre una base limpia; se cierra al terminar el test.
func New(t *testing.T) *Env {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &Env{
		Repos: sqlite.NewRepos(db),
		Tx:    sqlite.NewTxRunner(db),
		Now:   time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
		Log:   zerolog.Nop(),
	}
}

// Clock devuelve siempre e.Now (leído en cada llamada, así AdvanceDays surte efecto).
func (e *Env) Clock() func() time.Time {
	return func() time.Time { return e.Now }
}

// AdvanceDays mueve el reloj n días.
func (e *Env) AdvanceDays(n int) {
	e.Now = e.Now.AddDate(0, 0, n)
}

// Today fecha de calendario del reloj.
func (e *Env) Today() time.Time {
	return entity.DateOf(e.Now)
}

// Employee crea un empleado activo.
func (e *Env) Employee(t *testing.T, name, role, phone string) *entity.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)
	emp := &entity.Employee{
		ID:           uuid.New().String(),
		Name:         name,
		Role:         role,
		Phone:        phone,
		Status:       entity.EmployeeActive,
		PasswordHash: string(hash),
		CreatedAt:    e.Now,
		UpdatedAt:    e.Now,
	}
	require.NoError(t, e.Repos.Employees.Create(context.Background(), emp))
	return emp
}

// Category crea una categoría.
func (e *Env) Category(t *testing.T, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: e.Now, UpdatedAt: e.Now}
	require.NoError(t, e.Repos.Categories.Create(context.Background(), c))
	return c
}

// Supplier crea un proveedor con el saldo indicado.
func (e *Env) Supplier(t *testing.T, name, balance string) *entity.Supplier {
	t.Helper()
	s := &entity.Supplier{
		ID: uuid.New().String(), Name: name, Contact: "+254700000000",
		Balance: decimal.RequireFromString(balance), CreatedAt: e.Now, UpdatedAt: e.Now,
	}
	require.NoError(t, e.Repos.Suppliers.Create(context.Background(), s))
	return s
}

// Product crea un producto con precio y stock.
func (e *Env) Product(t *testing.T, name, sku, price string, stock int, categoryID *string) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID: uuid.New().String(), Name: name, SKU: sku,
		Price: decimal.RequireFromString(price), Stock: stock, CategoryID: categoryID,
		CreatedAt: e.Now, UpdatedAt: e.Now,
	}
	require.NoError(t, e.Repos.Products.Create(context.Background(), p))
	return p
}

// OpenDay registra el día de hoy abierto por openedBy.
func (e *Env) OpenDay(t *testing.T, openedBy string) *entity.Day {
	t.Helper()
	d := &entity.Day{
		ID: uuid.New().String(), Date: e.Today(), IsOpen: true, OpenedBy: openedBy,
		CreatedAt: e.Now, UpdatedAt: e.Now,
	}
	require.NoError(t, e.Repos.Days.Create(context.Background(), d))
	return d
}

// Stock lee el stock actual del producto.
func (e *Env) Stock(t *testing.T, productID string) int {
	t.Helper()
	p, err := e.Repos.Products.GetByID(context.Background(), productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// Ptr devuelve un puntero a v.
func Ptr[T any](v T) *T { return &v }

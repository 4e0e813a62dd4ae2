package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/majidtech25/my-project02/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// NewRepos construye todos los repositorios sobre q (*sqlx.DB o *sqlx.Tx).
func NewRepos(q sqlx.ExtContext) repository.Repos {
	return repository.Repos{
		Employees:  NewEmployeeRepository(q),
		Categories: NewCategoryRepository(q),
		Suppliers:  NewSupplierRepository(q),
		Products:   NewProductRepository(q),
		Days:       NewDayRepository(q),
		Sales:      NewSaleRepository(q),
		Credits:    NewCreditRepository(q),
	}
}

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sqlx.DB
}

// NewTxRunner construye el runner con la base abierta por Open.
func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context, repos repository.Repos) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(ctx, NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Package storage abre el almacén configurado (PostgreSQL o SQLite) y entrega
// los repositorios y el TxRunner listos para los casos de uso.
package storage

import (
	"context"
	"fmt"

	"github.com/majidtech25/my-project02/internal/domain/repository"
	"github.com/majidtech25/my-project02/internal/infrastructure/postgres"
	"github.com/majidtech25/my-project02/internal/infrastructure/sqlite"
	"github.com/majidtech25/my-project02/pkg/config"
)

// Store repositorios sobre el pool más el runner de transacciones.
type Store struct {
	Driver string
	Repos  repository.Repos
	Tx     repository.TxRunner
	close  func()
}

// Close libera las conexiones.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open conecta según cfg.Driver y aplica las migraciones.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{
			Driver: cfg.Driver,
			Repos:  postgres.NewRepos(pool),
			Tx:     postgres.NewTxRunner(pool),
			close:  pool.Close,
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver: cfg.Driver,
			Repos:  sqlite.NewRepos(db),
			Tx:     sqlite.NewTxRunner(db),
			close:  func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("storage: driver no soportado %q", cfg.Driver)
	}
}

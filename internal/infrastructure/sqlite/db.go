// Package sqlite implementa los puertos de repositorio sobre SQLite embebido
// (modernc.org/sqlite, sin cgo) usando sqlx. Pensado para instalaciones de una
// sola caja y para los tests; todas las transacciones se serializan en una única conexión.
package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// MemoryPath base de datos en memoria (tests).
const MemoryPath = ":memory:"

// Open abre la base SQLite en path y aplica el esquema.
// Se limita a una conexión: SQLite admite un solo escritor y así una
// transacción ve sus propias escrituras y las demás esperan turno.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func dsn(path string) string {
	base := path
	if path == MemoryPath {
		base = "file::memory:"
	} else if !strings.HasPrefix(path, "file:") {
		base = "file:" + path
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate crea las tablas e índices si no existen.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite: migración %d: %w", i, err)
		}
	}
	return nil
}

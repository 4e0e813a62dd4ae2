package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majidtech25/my-project02/internal/infrastructure/sqlite"
	"github.com/majidtech25/my-project02/internal/infrastructure/storage"
	"github.com/majidtech25/my-project02/pkg/config"
)

func TestOpen_SQLiteEnMemoria(t *testing.T) {
	st, err := storage.Open(context.Background(), config.DBConfig{Driver: config.DriverSQLite, SQLitePath: sqlite.MemoryPath})
	require.NoError(t, err)
	defer st.Close()

	n, err := st.Repos.Employees.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NotNil(t, st.Tx)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), config.DBConfig{Driver: "mysql"})
	assert.Error(t, err)
}

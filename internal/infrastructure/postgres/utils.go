package postgres

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de foreign key (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return false
}

// limitClause agrega LIMIT/OFFSET solo si limit > 0; los placeholders siguen a los args existentes.
func limitClause(limit, offset int, args []any) (string, []any) {
	if limit <= 0 {
		return "", args
	}
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	return " LIMIT " + placeholder(len(args)-1) + " OFFSET " + placeholder(len(args)), args
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

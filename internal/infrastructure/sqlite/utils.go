package sqlite

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"

	"github.com/majidtech25/my-project02/internal/domain/entity"
)

// Códigos extendidos de SQLite.
const (
	sqliteConstraintForeignKey = 787
	sqliteConstraintUnique     = 2067
	sqliteConstraintPrimaryKey = 1555
)

// timeLayout ancho fijo en UTC: el orden lexicográfico coincide con el cronológico.
const timeLayout = "2006-01-02 15:04:05.000000000"

// isUniqueViolation verifica si un error es una violación de UNIQUE o PRIMARY KEY.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqliteConstraintUnique || se.Code() == sqliteConstraintPrimaryKey
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation verifica si un error es una violación de FOREIGN KEY.
func isForeignKeyViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqliteConstraintForeignKey
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatDate(t time.Time) string {
	return t.Format(entity.DateLayout)
}

// timestamp lee columnas TEXT de fecha-hora.
type timestamp time.Time

func (t *timestamp) Scan(v interface{}) error {
	switch x := v.(type) {
	case nil:
		*t = timestamp(time.Time{})
		return nil
	case time.Time:
		*t = timestamp(x.UTC())
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	}
	return fmt.Errorf("timestamp: tipo no soportado %T", v)
}

func (t *timestamp) parse(s string) error {
	parsed, err := time.ParseInLocation(timeLayout, s, time.UTC)
	if err != nil {
		if parsed, err = time.Parse(time.RFC3339Nano, s); err != nil {
			return fmt.Errorf("timestamp %q: %w", s, err)
		}
	}
	*t = timestamp(parsed.UTC())
	return nil
}

func (t timestamp) Value() (driver.Value, error) { return formatTime(time.Time(t)), nil }

func (t timestamp) Time() time.Time { return time.Time(t) }

// calendarDate lee columnas TEXT YYYY-MM-DD.
type calendarDate time.Time

func (d *calendarDate) Scan(v interface{}) error {
	var s string
	switch x := v.(type) {
	case time.Time:
		*d = calendarDate(entity.DateOf(x))
		return nil
	case []byte:
		s = string(x)
	case string:
		s = x
	default:
		return fmt.Errorf("date: tipo no soportado %T", v)
	}
	parsed, err := entity.ParseDate(s)
	if err != nil {
		return fmt.Errorf("date %q: %w", s, err)
	}
	*d = calendarDate(parsed)
	return nil
}

func (d calendarDate) Time() time.Time { return time.Time(d) }

// limitClause agrega LIMIT/OFFSET solo si limit > 0.
func limitClause(limit, offset int, args []interface{}) (string, []interface{}) {
	if limit <= 0 {
		return "", args
	}
	if offset < 0 {
		offset = 0
	}
	return " LIMIT ? OFFSET ?", append(args, limit, offset)
}

package entity

import "time"

// DateLayout formato de las fechas de calendario (días y ventas).
const DateLayout = "2006-01-02"

// Day es una jornada operativa: se abre una sola vez y, una vez cerrada, no se reabre.
type Day struct {
	ID        string
	Date      time.Time // medianoche UTC de la fecha de calendario
	IsOpen    bool
	OpenedBy  string
	ClosedBy  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateOf reduce t a su fecha de calendario (en la zona de t), expresada como medianoche UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate interpreta una fecha YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

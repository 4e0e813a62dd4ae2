package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/majidtech25/my-project02/internal/domain"
)

var (
	phonePattern        = regexp.MustCompile(`^\+?\d{7,20}$`)
	kenyanLocalPattern  = regexp.MustCompile(`^07\d{8}$`)
	kenyanIntlPattern   = regexp.MustCompile(`^\+2547\d{8}$`)
	maxProductPrice     = decimal.NewFromInt(1_000_000)
	minPasswordLength   = 6
	defaultPageLimit    = 20
	errPasswordTooShort = fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, minPasswordLength)
)

// titleName colapsa espacios y capitaliza cada palabra ("coca  cola" → "Coca Cola").
// Una letra tras un dígito también se capitaliza ("2kg" → "2Kg").
// cases.Caser no es seguro entre goroutines: se crea uno por llamada.
func titleName(s string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}

// checkLength valida la longitud en runas de un campo ya normalizado.
func checkLength(field, v string, lo, hi int) error {
	n := len([]rune(v))
	if n < lo || n > hi {
		return fmt.Errorf("%w: %s debe tener entre %d y %d caracteres", domain.ErrInvalidInput, field, lo, hi)
	}
	return nil
}

func normalizePhone(s string) (string, error) {
	p := strings.TrimSpace(s)
	if !phonePattern.MatchString(p) {
		return "", fmt.Errorf("%w: teléfono inválido", domain.ErrInvalidInput)
	}
	return p, nil
}

// normalizeKenyanContact convierte 07XXXXXXXX en +2547XXXXXXXX. Vacío se admite.
func normalizeKenyanContact(s string) (string, error) {
	c := strings.TrimSpace(s)
	switch {
	case c == "":
		return "", nil
	case kenyanLocalPattern.MatchString(c):
		return "+254" + c[1:], nil
	case kenyanIntlPattern.MatchString(c):
		return c, nil
	}
	return "", fmt.Errorf("%w: el contacto debe tener formato 07XXXXXXXX o +2547XXXXXXXX", domain.ErrInvalidInput)
}

func validPrice(p decimal.Decimal) error {
	if !p.IsPositive() || p.GreaterThan(maxProductPrice) {
		return fmt.Errorf("%w: el precio debe ser mayor a 0 y no superar 1.000.000", domain.ErrInvalidInput)
	}
	return nil
}

func pageOrDefault(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// optionalID trata "" como ausencia de referencia.
func optionalID(id *string) *string {
	if id == nil {
		return nil
	}
	v := strings.TrimSpace(*id)
	if v == "" {
		return nil
	}
	return &v
}

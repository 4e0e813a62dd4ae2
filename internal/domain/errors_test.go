package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/majidtech25/my-project02/internal/domain"
)

func TestStockError_EsInsufficientStock(t *testing.T) {
	err := fmt.Errorf("reservar: %w", &domain.StockError{ProductID: "p1", ProductName: "Sugar 1kg", Available: 3, Requested: 5})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var se *domain.StockError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Available)
	assert.Contains(t, err.Error(), "Sugar 1kg")
	assert.Contains(t, err.Error(), "disponible: 3")
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want domain.Kind
	}{
		{domain.ErrNoOpenDay, domain.KindValidation},
		{fmt.Errorf("%w: producto x", domain.ErrNotFound), domain.KindValidation},
		{&domain.StockError{}, domain.KindValidation},
		{domain.ErrDuplicate, domain.KindConflict},
		{domain.ErrRoleTaken, domain.KindConflict},
		{domain.ErrForbidden, domain.KindAuth},
		{errors.New("conexión rechazada"), domain.KindSystem},
		{nil, domain.KindSystem},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.KindOf(tc.err), "%v", tc.err)
	}
}

package sales

import (
	"fmt"
	"strings"
	"time"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/application/stock"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
)

func normalizeMethod(s string) entity.PaymentMethod {
	return entity.PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
}

func toLines(items []dto.SaleItemRequest) []stock.Line {
	lines := make([]stock.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, stock.Line{ProductID: strings.TrimSpace(it.ProductID), Quantity: it.Quantity})
	}
	return lines
}

// parseRange interpreta from/to (YYYY-MM-DD); vacíos significan sin límite.
func parseRange(from, to string) (*time.Time, *time.Time, error) {
	var f, t *time.Time
	if from != "" {
		d, err := entity.ParseDate(from)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: fecha inicial inválida", domain.ErrInvalidInput)
		}
		f = &d
	}
	if to != "" {
		d, err := entity.ParseDate(to)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: fecha final inválida", domain.ErrInvalidInput)
		}
		t = &d
	}
	if f != nil && t != nil && t.Before(*f) {
		return nil, nil, fmt.Errorf("%w: la fecha final es anterior a la inicial", domain.ErrInvalidInput)
	}
	return f, t, nil
}

func page(limit, offset int) dto.PageRequest {
	p := dto.PageRequest{Limit: limit, Offset: offset}
	p.DefaultPage()
	return p
}

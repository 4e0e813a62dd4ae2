package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majidtech25/my-project02/internal/application/dto"
)

func TestGenerateDailyReportPDF(t *testing.T) {
	closedBy, closedByName := "e1", "Amina"
	rep := &dto.SalesReportResponse{
		From: "2024-03-15",
		To:   "2024-03-15",
		SalesSummary: dto.SalesSummary{
			TotalSales: decimal.RequireFromString("29"), TotalCash: decimal.RequireFromString("28"),
			TotalCredits: decimal.RequireFromString("1"), TotalPending: decimal.Zero, SalesCount: 3,
		},
		SalesByEmployee: []dto.SalesByEmployee{
			{EmployeeID: "e2", EmployeeName: "Chebet", TotalSales: decimal.NewFromInt(20), TotalCash: decimal.NewFromInt(19), TotalCredits: decimal.NewFromInt(1), SalesCount: 2},
		},
		SalesByPaymentMethod: []dto.SalesByPaymentMethod{
			{PaymentMethod: "mpesa", TotalSales: decimal.NewFromInt(19), SalesCount: 1},
		},
		CreditSummary: dto.CreditSummary{OpenCredits: decimal.NewFromInt(1), ClearedCredits: decimal.Zero, OpenCreditsCount: 1},
		Day:           &dto.DayReport{Date: "2024-03-15", OpenedBy: "e1", OpenedByName: "Amina", ClosedBy: &closedBy, ClosedByName: &closedByName},
	}

	doc, err := NewMarotoPDFGenerator().GenerateDailyReportPDF(context.Background(), "Duka La Amina", rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateDailyReportPDF_SinReporte(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateDailyReportPDF(context.Background(), "", nil)
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "KES 0.00",
		"999.5":      "KES 999.50",
		"1234.5":     "KES 1,234.50",
		"1000000":    "KES 1,000,000.00",
		"-25000.129": "KES -25,000.13",
	}
	for in, want := range cases {
		assert.Equal(t, want, money(decimal.RequireFromString(in)), in)
	}
}

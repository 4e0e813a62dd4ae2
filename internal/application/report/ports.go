package report

import (
	"context"

	"github.com/majidtech25/my-project02/internal/application/dto"
)

// PDFGenerator puerto para generar el PDF del reporte diario (implementado en infrastructure/pdf).
type PDFGenerator interface {
	GenerateDailyReportPDF(ctx context.Context, businessName string, rep *dto.SalesReportResponse) ([]byte, error)
}

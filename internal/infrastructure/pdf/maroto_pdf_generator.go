// Package pdf genera el reporte diario de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio + título     │  Fecha + estado del día     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | Pagado | Crédito | Pendiente | N° ventas   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ventas por empleado                                  │
//	│  TABLA: ventas por categoría                                 │
//	│  TABLA: ventas por medio de pago                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CRÉDITOS: abiertos / saldados                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ report.PDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateDailyReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDailyReportPDF(_ context.Context, businessName string, rep *dto.SalesReportResponse) ([]byte, error) {
	if rep == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	businessName = nonEmpty(businessName, "Duka POS")

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte diario de ventas "+rep.From, true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(businessName, rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(rep.SalesSummary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Por empleado
	m.AddRows(sectionTitle("VENTAS POR EMPLEADO"))
	m.AddRows(tableHeaderRow([]string{"Empleado", "Ventas", "Total", "Pagado", "Crédito"}, []int{4, 2, 2, 2, 2}))
	for _, e := range rep.SalesByEmployee {
		m.AddRows(tableRow(
			[]string{nonEmpty(e.EmployeeName, e.EmployeeID), strconv.Itoa(e.SalesCount), money(e.TotalSales), money(e.TotalCash), money(e.TotalCredits)},
			[]int{4, 2, 2, 2, 2},
		))
	}
	if len(rep.SalesByEmployee) == 0 {
		m.AddRows(emptyRow())
	}

	// Por categoría
	m.AddRows(sectionTitle("VENTAS POR CATEGORÍA"))
	m.AddRows(tableHeaderRow([]string{"Categoría", "Unidades", "Total"}, []int{6, 3, 3}))
	for _, c := range rep.SalesByCategory {
		m.AddRows(tableRow([]string{c.CategoryName, strconv.Itoa(c.ItemsCount), money(c.TotalSales)}, []int{6, 3, 3}))
	}
	if len(rep.SalesByCategory) == 0 {
		m.AddRows(emptyRow())
	}

	// Por medio de pago
	m.AddRows(sectionTitle("VENTAS POR MEDIO DE PAGO"))
	m.AddRows(tableHeaderRow([]string{"Medio", "Ventas", "Total"}, []int{6, 3, 3}))
	for _, p := range rep.SalesByPaymentMethod {
		m.AddRows(tableRow([]string{methodLabel(p.PaymentMethod), strconv.Itoa(p.SalesCount), money(p.TotalSales)}, []int{6, 3, 3}))
	}
	if len(rep.SalesByPaymentMethod) == 0 {
		m.AddRows(emptyRow())
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(creditRow(rep.CreditSummary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio + título (izq) y fecha + estado del día (der).
func headerRow(businessName string, rep *dto.SalesReportResponse) core.Row {
	status := "Sin jornada registrada"
	opened := ""
	if d := rep.Day; d != nil {
		status = "Día cerrado"
		if d.IsOpen {
			status = "Día abierto"
		}
		opened = "Abrió: " + nonEmpty(d.OpenedByName, d.OpenedBy)
		if d.ClosedByName != nil {
			opened += "   |   Cerró: " + *d.ClosedByName
		}
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte diario de ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(rep.From, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New(status, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 7,
			}),
			text.New(opened, props.Text{
				Size: 7, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales del día en cinco columnas.
func summaryRow(s dto.SalesSummary) core.Row {
	cell := func(size int, label, value string) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center, Color: colorPrimary, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell(3, "Total vendido", money(s.TotalSales)),
		cell(3, "Pagado", money(s.TotalCash)),
		cell(2, "A crédito", money(s.TotalCredits)),
		cell(2, "Pendiente", money(s.TotalPending)),
		cell(2, "N° ventas", strconv.Itoa(s.SalesCount)),
	)
}

// creditRow: créditos abiertos y saldados de las ventas del día.
func creditRow(c dto.CreditSummary) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CRÉDITOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Abiertos: %d (%s)   |   Saldados: %d (%s)",
				c.OpenCreditsCount, money(c.OpenCredits),
				c.ClearedCreditsCount, money(c.ClearedCredits),
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3}),
	))
}

// tableHeaderRow: cabecera de tabla; la primera columna a la izquierda, el resto a la derecha.
func tableHeaderRow(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Sin movimientos", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func methodLabel(m string) string {
	switch m {
	case "cash":
		return "Efectivo"
	case "mpesa":
		return "M-Pesa"
	case "card":
		return "Tarjeta"
	default:
		return m
	}
}

// money formatea un monto en KES con dos decimales.
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	return "KES " + sign + formatMoney(s[:len(s)-3]) + s[len(s)-3:]
}

// formatMoney inserta comas de miles en un string numérico sin decimales.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

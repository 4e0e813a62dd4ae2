// Package report arma los reportes de solo lectura: ventas diarias y por periodo,
// créditos, inventario bajo, saldos de proveedores y productos más vendidos.
// Lee sin bloqueos; los datos pueden estar ligeramente desactualizados.
package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/domain/repository"
)

const uncategorized = "Sin categoría"

// Config parámetros de los reportes.
type Config struct {
	BusinessName      string
	LowStockThreshold int
	TopProductsLimit  int
}

// ReportUseCase consultas agregadas sobre ventas, créditos e inventario.
type ReportUseCase struct {
	repos repository.Repos
	pdf   PDFGenerator
	clock func() time.Time
	cfg   Config
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se exponen PDFs.
func NewReportUseCase(repos repository.Repos, pdf PDFGenerator, clock func() time.Time, cfg Config) *ReportUseCase {
	if clock == nil {
		clock = time.Now
	}
	if cfg.TopProductsLimit <= 0 {
		cfg.TopProductsLimit = 5
	}
	return &ReportUseCase{repos: repos, pdf: pdf, clock: clock, cfg: cfg}
}

func (uc *ReportUseCase) today() time.Time {
	return entity.DateOf(uc.clock())
}

// dateOrToday interpreta YYYY-MM-DD; vacío es hoy.
func (uc *ReportUseCase) dateOrToday(s string) (time.Time, error) {
	if s == "" {
		return uc.today(), nil
	}
	d, err := entity.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q, se espera YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return d, nil
}

func (uc *ReportUseCase) rangeOrToday(from, to string) (time.Time, time.Time, error) {
	f, err := uc.dateOrToday(from)
	if err != nil {
		return f, f, err
	}
	t, err := uc.dateOrToday(to)
	if err != nil {
		return f, t, err
	}
	if t.Before(f) {
		return f, t, fmt.Errorf("%w: la fecha final es anterior a la inicial", domain.ErrInvalidInput)
	}
	return f, t, nil
}

// Daily reporte de ventas de una fecha (por defecto hoy) con el estado de su jornada.
func (uc *ReportUseCase) Daily(ctx context.Context, date string) (*dto.SalesReportResponse, error) {
	d, err := uc.dateOrToday(date)
	if err != nil {
		return nil, err
	}
	rep, err := uc.salesReport(ctx, d, d)
	if err != nil {
		return nil, err
	}
	day, err := uc.repos.Days.GetByDate(ctx, d)
	if err != nil {
		return nil, err
	}
	if day != nil {
		names, err := uc.employeeNames(ctx)
		if err != nil {
			return nil, err
		}
		rep.Day = &dto.DayReport{
			DayID:        day.ID,
			Date:         day.Date.Format(entity.DateLayout),
			IsOpen:       day.IsOpen,
			OpenedBy:     day.OpenedBy,
			OpenedByName: names[day.OpenedBy],
			ClosedBy:     day.ClosedBy,
		}
		if day.ClosedBy != nil {
			name := names[*day.ClosedBy]
			rep.Day.ClosedByName = &name
		}
	}
	return rep, nil
}

// Period reporte de ventas entre dos fechas inclusivas.
func (uc *ReportUseCase) Period(ctx context.Context, from, to string) (*dto.SalesReportResponse, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: se requieren fecha inicial y final", domain.ErrInvalidInput)
	}
	f, t, err := uc.rangeOrToday(from, to)
	if err != nil {
		return nil, err
	}
	return uc.salesReport(ctx, f, t)
}

// DailyPDF genera el PDF del reporte diario. Devuelve bytes y nombre de archivo sugerido.
func (uc *ReportUseCase) DailyPDF(ctx context.Context, date string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", errors.New("report: generador de PDF no configurado")
	}
	rep, err := uc.Daily(ctx, date)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.pdf.GenerateDailyReportPDF(ctx, uc.cfg.BusinessName, rep)
	if err != nil {
		return nil, "", err
	}
	return doc, fmt.Sprintf("reporte-diario-%s.pdf", rep.From), nil
}

func (uc *ReportUseCase) salesReport(ctx context.Context, from, to time.Time) (*dto.SalesReportResponse, error) {
	sales, err := uc.repos.Sales.List(ctx, repository.SaleFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	credits, err := uc.repos.Credits.List(ctx, repository.CreditFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	names, err := uc.employeeNames(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productsByID(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	rep := &dto.SalesReportResponse{
		From: from.Format(entity.DateLayout),
		To:   to.Format(entity.DateLayout),
		SalesSummary: dto.SalesSummary{
			TotalSales: decimal.Zero, TotalCredits: decimal.Zero, TotalCash: decimal.Zero, TotalPending: decimal.Zero,
		},
		CreditSummary: dto.CreditSummary{OpenCredits: decimal.Zero, ClearedCredits: decimal.Zero},
	}

	byEmployee := map[string]*dto.SalesByEmployee{}
	byCategory := map[string]*dto.SalesByCategory{}
	byMethod := map[entity.PaymentMethod]*dto.SalesByPaymentMethod{}

	for _, s := range sales {
		sum := &rep.SalesSummary
		sum.SalesCount++
		sum.TotalSales = sum.TotalSales.Add(s.TotalAmount)

		emp, ok := byEmployee[s.EmployeeID]
		if !ok {
			emp = &dto.SalesByEmployee{
				EmployeeID: s.EmployeeID, EmployeeName: names[s.EmployeeID],
				TotalSales: decimal.Zero, TotalCredits: decimal.Zero, TotalCash: decimal.Zero,
			}
			byEmployee[s.EmployeeID] = emp
		}
		emp.SalesCount++
		emp.TotalSales = emp.TotalSales.Add(s.TotalAmount)

		switch {
		case s.IsPaid:
			sum.TotalCash = sum.TotalCash.Add(s.TotalAmount)
			emp.TotalCash = emp.TotalCash.Add(s.TotalAmount)
			if s.PaymentMethod != nil {
				m, ok := byMethod[*s.PaymentMethod]
				if !ok {
					m = &dto.SalesByPaymentMethod{PaymentMethod: string(*s.PaymentMethod), TotalSales: decimal.Zero}
					byMethod[*s.PaymentMethod] = m
				}
				m.SalesCount++
				m.TotalSales = m.TotalSales.Add(s.TotalAmount)
			}
		case s.IsCredit:
			sum.TotalCredits = sum.TotalCredits.Add(s.TotalAmount)
			emp.TotalCredits = emp.TotalCredits.Add(s.TotalAmount)
		default:
			sum.TotalPending = sum.TotalPending.Add(s.TotalAmount)
		}

		for _, it := range s.Items {
			var categoryID *string
			if p, ok := products[it.ProductID]; ok {
				categoryID = p.CategoryID
			}
			key := ""
			name := uncategorized
			if categoryID != nil {
				key = *categoryID
				if n, ok := categories[key]; ok {
					name = n
				}
			}
			cat, ok := byCategory[key]
			if !ok {
				cat = &dto.SalesByCategory{CategoryID: categoryID, CategoryName: name, TotalSales: decimal.Zero}
				byCategory[key] = cat
			}
			cat.ItemsCount += it.Quantity
			cat.TotalSales = cat.TotalSales.Add(it.Subtotal())
		}
	}

	for _, c := range credits {
		cs := &rep.CreditSummary
		if c.IsOpen() {
			cs.OpenCreditsCount++
			cs.OpenCredits = cs.OpenCredits.Add(c.Amount)
		} else {
			cs.ClearedCreditsCount++
			cs.ClearedCredits = cs.ClearedCredits.Add(c.Amount)
		}
	}

	rep.SalesByEmployee = make([]dto.SalesByEmployee, 0, len(byEmployee))
	for _, e := range byEmployee {
		rep.SalesByEmployee = append(rep.SalesByEmployee, *e)
	}
	sort.Slice(rep.SalesByEmployee, func(i, j int) bool {
		a, b := rep.SalesByEmployee[i], rep.SalesByEmployee[j]
		if !a.TotalSales.Equal(b.TotalSales) {
			return a.TotalSales.GreaterThan(b.TotalSales)
		}
		return a.EmployeeName < b.EmployeeName
	})

	rep.SalesByCategory = make([]dto.SalesByCategory, 0, len(byCategory))
	for _, c := range byCategory {
		rep.SalesByCategory = append(rep.SalesByCategory, *c)
	}
	sort.Slice(rep.SalesByCategory, func(i, j int) bool {
		a, b := rep.SalesByCategory[i], rep.SalesByCategory[j]
		if !a.TotalSales.Equal(b.TotalSales) {
			return a.TotalSales.GreaterThan(b.TotalSales)
		}
		return a.CategoryName < b.CategoryName
	})

	rep.SalesByPaymentMethod = make([]dto.SalesByPaymentMethod, 0, len(byMethod))
	for _, pm := range []entity.PaymentMethod{entity.PaymentCash, entity.PaymentMpesa, entity.PaymentCard} {
		if m, ok := byMethod[pm]; ok {
			rep.SalesByPaymentMethod = append(rep.SalesByPaymentMethod, *m)
		}
	}
	return rep, nil
}

// Credits créditos por estado (por defecto abiertos) con su total.
func (uc *ReportUseCase) Credits(ctx context.Context, status string) (*dto.CreditReportResponse, error) {
	if status == "" {
		status = entity.CreditOpen
	}
	if status != entity.CreditOpen && status != entity.CreditCleared {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	list, err := uc.repos.Credits.List(ctx, repository.CreditFilter{Status: status})
	if err != nil {
		return nil, err
	}
	out := &dto.CreditReportResponse{Status: status, Total: decimal.Zero, Items: make([]dto.CreditResponse, 0, len(list))}
	for _, c := range list {
		out.Count++
		out.Total = out.Total.Add(c.Amount)
		out.Items = append(out.Items, *dto.FromCredit(c))
	}
	return out, nil
}

// Inventory productos con stock <= threshold (nil usa el umbral configurado).
func (uc *ReportUseCase) Inventory(ctx context.Context, threshold *int) (*dto.InventoryReportResponse, error) {
	limit := uc.cfg.LowStockThreshold
	if threshold != nil {
		limit = *threshold
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: el umbral no puede ser negativo", domain.ErrInvalidInput)
	}
	list, err := uc.repos.Products.ListLowStock(ctx, limit)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryNames(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.supplierNames(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryReportResponse{Threshold: limit, Items: make([]dto.InventoryReportItem, 0, len(list))}
	for _, p := range list {
		item := dto.InventoryReportItem{ProductID: p.ID, Product: p.Name, SKU: p.SKU, Stock: p.Stock}
		if p.CategoryID != nil {
			if n, ok := categories[*p.CategoryID]; ok {
				item.Category = &n
			}
		}
		if p.SupplierID != nil {
			if n, ok := suppliers[*p.SupplierID]; ok {
				item.Supplier = &n
			}
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// SupplierBalances proveedores a los que se les debe algo.
func (uc *ReportUseCase) SupplierBalances(ctx context.Context) (*dto.SupplierBalancesResponse, error) {
	list, err := uc.repos.Suppliers.ListWithBalance(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.SupplierBalancesResponse{Total: decimal.Zero, Items: make([]dto.SupplierBalanceItem, 0, len(list))}
	for _, s := range list {
		out.Total = out.Total.Add(s.Balance)
		out.Items = append(out.Items, dto.SupplierBalanceItem{SupplierID: s.ID, Supplier: s.Name, Balance: s.Balance})
	}
	return out, nil
}

// TopProducts productos más vendidos por cantidad en el rango (por defecto hoy).
func (uc *ReportUseCase) TopProducts(ctx context.Context, from, to string, limit int) (*dto.TopProductsResponse, error) {
	f, t, err := uc.rangeOrToday(from, to)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = uc.cfg.TopProductsLimit
	}
	sales, err := uc.repos.Sales.List(ctx, repository.SaleFilter{From: &f, To: &t})
	if err != nil {
		return nil, err
	}
	products, err := uc.productsByID(ctx)
	if err != nil {
		return nil, err
	}
	agg := map[string]*dto.TopProductItem{}
	for _, s := range sales {
		for _, it := range s.Items {
			item, ok := agg[it.ProductID]
			if !ok {
				item = &dto.TopProductItem{ProductID: it.ProductID, TotalSales: decimal.Zero}
				if p, ok := products[it.ProductID]; ok {
					item.Product = p.Name
				}
				agg[it.ProductID] = item
			}
			item.Quantity += it.Quantity
			item.TotalSales = item.TotalSales.Add(it.Subtotal())
		}
	}
	items := make([]dto.TopProductItem, 0, len(agg))
	for _, it := range agg {
		items = append(items, *it)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		if !items[i].TotalSales.Equal(items[j].TotalSales) {
			return items[i].TotalSales.GreaterThan(items[j].TotalSales)
		}
		return items[i].Product < items[j].Product
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return &dto.TopProductsResponse{From: f.Format(entity.DateLayout), To: t.Format(entity.DateLayout), Items: items}, nil
}

func (uc *ReportUseCase) employeeNames(ctx context.Context) (map[string]string, error) {
	list, err := uc.repos.Employees.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(list))
	for _, e := range list {
		names[e.ID] = e.Name
	}
	return names, nil
}

func (uc *ReportUseCase) categoryNames(ctx context.Context) (map[string]string, error) {
	list, err := uc.repos.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(list))
	for _, c := range list {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (uc *ReportUseCase) supplierNames(ctx context.Context) (map[string]string, error) {
	list, err := uc.repos.Suppliers.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(list))
	for _, s := range list {
		names[s.ID] = s.Name
	}
	return names, nil
}

func (uc *ReportUseCase) productsByID(ctx context.Context) (map[string]*entity.Product, error) {
	list, err := uc.repos.Products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}
	return byID, nil
}

package dto

import "github.com/majidtech25/my-project02/internal/domain/entity"

// Estados visibles de una venta.
const (
	SaleStatusPaid    = "paid"
	SaleStatusCredit  = "credit"
	SaleStatusPending = "pending"
)

// FromEmployee mapea un empleado sin exponer el hash.
func FromEmployee(e *entity.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{
		ID: e.ID, Name: e.Name, Role: e.Role, Phone: e.Phone, Status: e.Status,
		CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}

func FromCategory(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func FromSupplier(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{
		ID: s.ID, Name: s.Name, Contact: s.Contact, Email: s.Email, Balance: s.Balance,
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

func FromProduct(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID: p.ID, Name: p.Name, SKU: p.SKU, Price: p.Price, Stock: p.Stock,
		CategoryID: p.CategoryID, SupplierID: p.SupplierID,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

func FromDay(d *entity.Day) *DayResponse {
	if d == nil {
		return nil
	}
	return &DayResponse{
		ID: d.ID, Date: d.Date.Format(entity.DateLayout), IsOpen: d.IsOpen,
		OpenedBy: d.OpenedBy, ClosedBy: d.ClosedBy,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

func FromCredit(c *entity.Credit) *CreditResponse {
	if c == nil {
		return nil
	}
	return &CreditResponse{
		ID: c.ID, SaleID: c.SaleID, EmployeeID: c.EmployeeID, Amount: c.Amount, Status: c.Status,
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

// FromSale mapea la venta con sus items; credit puede ser nil.
func FromSale(s *entity.Sale, credit *entity.Credit) *SaleResponse {
	if s == nil {
		return nil
	}
	out := &SaleResponse{
		ID: s.ID, Date: s.Date.Format(entity.DateLayout), TotalAmount: s.TotalAmount,
		EmployeeID: s.EmployeeID, IsPaid: s.IsPaid, IsCredit: s.IsCredit,
		Items:     make([]SaleItemResponse, 0, len(s.Items)),
		Credit:    FromCredit(credit),
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
	if s.PaymentMethod != nil {
		pm := string(*s.PaymentMethod)
		out.PaymentMethod = &pm
	}
	switch {
	case s.IsPaid:
		out.Status = SaleStatusPaid
	case s.IsCredit:
		out.Status = SaleStatusCredit
	default:
		out.Status = SaleStatusPending
	}
	for _, it := range s.Items {
		out.Items = append(out.Items, SaleItemResponse{
			ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity,
			UnitPrice: it.UnitPrice, Subtotal: it.Subtotal(), Position: it.Position,
		})
	}
	return out
}

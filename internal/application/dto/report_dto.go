package dto

import "github.com/shopspring/decimal"

// SalesSummary totales de ventas. CashTotal es lo efectivamente cobrado (ventas pagadas).
type SalesSummary struct {
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	TotalCash    decimal.Decimal `json:"total_cash"`
	TotalPending decimal.Decimal `json:"total_pending"`
	SalesCount   int             `json:"number_of_sales"`
}

// SalesByEmployee agregados por empleado.
type SalesByEmployee struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	TotalCash    decimal.Decimal `json:"total_cash"`
	SalesCount   int             `json:"number_of_sales"`
}

// SalesByCategory agregados por categoría de producto ("Sin categoría" si no tiene).
type SalesByCategory struct {
	CategoryID   *string         `json:"category_id"`
	CategoryName string          `json:"category_name"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	ItemsCount   int             `json:"number_of_items"`
}

// SalesByPaymentMethod agregados por medio de pago (solo ventas pagadas).
type SalesByPaymentMethod struct {
	PaymentMethod string          `json:"payment_method"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	SalesCount    int             `json:"number_of_sales"`
}

// CreditSummary créditos de las ventas del periodo por estado.
type CreditSummary struct {
	OpenCredits         decimal.Decimal `json:"open_credits"`
	ClearedCredits      decimal.Decimal `json:"cleared_credits"`
	OpenCreditsCount    int             `json:"number_of_open_credits"`
	ClearedCreditsCount int             `json:"number_of_cleared_credits"`
}

// DayReport estado del día operativo con nombres de quien abrió y cerró.
type DayReport struct {
	DayID        string  `json:"day_id"`
	Date         string  `json:"date"`
	IsOpen       bool    `json:"is_open"`
	OpenedBy     string  `json:"opened_by"`
	OpenedByName string  `json:"opened_by_name"`
	ClosedBy     *string `json:"closed_by"`
	ClosedByName *string `json:"closed_by_name"`
}

// SalesReportResponse reporte diario o de periodo. Day solo en el diario, y nil si no hubo jornada.
type SalesReportResponse struct {
	From                 string                 `json:"from"`
	To                   string                 `json:"to"`
	SalesSummary         SalesSummary           `json:"sales_summary"`
	SalesByEmployee      []SalesByEmployee      `json:"sales_by_employee"`
	SalesByCategory      []SalesByCategory      `json:"sales_by_category"`
	SalesByPaymentMethod []SalesByPaymentMethod `json:"sales_by_payment_method"`
	CreditSummary        CreditSummary          `json:"credit_summary"`
	Day                  *DayReport             `json:"day_report"`
}

// CreditReportResponse créditos filtrados por estado.
type CreditReportResponse struct {
	Status string           `json:"status"`
	Count  int              `json:"count"`
	Total  decimal.Decimal  `json:"total"`
	Items  []CreditResponse `json:"items"`
}

// InventoryReportItem producto con stock bajo.
type InventoryReportItem struct {
	ProductID string  `json:"product_id"`
	Product   string  `json:"product"`
	SKU       string  `json:"sku"`
	Stock     int     `json:"stock"`
	Category  *string `json:"category"`
	Supplier  *string `json:"supplier"`
}

// InventoryReportResponse productos con stock <= Threshold.
type InventoryReportResponse struct {
	Threshold int                   `json:"threshold"`
	Items     []InventoryReportItem `json:"items"`
}

// SupplierBalanceItem saldo adeudado a un proveedor.
type SupplierBalanceItem struct {
	SupplierID string          `json:"supplier_id"`
	Supplier   string          `json:"supplier"`
	Balance    decimal.Decimal `json:"balance"`
}

// SupplierBalancesResponse proveedores con saldo > 0.
type SupplierBalancesResponse struct {
	Total decimal.Decimal       `json:"total"`
	Items []SupplierBalanceItem `json:"items"`
}

// TopProductItem producto más vendido en el periodo.
type TopProductItem struct {
	ProductID  string          `json:"product_id"`
	Product    string          `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// TopProductsResponse ranking por cantidad vendida.
type TopProductsResponse struct {
	From  string           `json:"from"`
	To    string           `json:"to"`
	Items []TopProductItem `json:"items"`
}

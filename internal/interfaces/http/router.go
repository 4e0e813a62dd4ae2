package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/majidtech25/my-project02/internal/application/auth"
	"github.com/majidtech25/my-project02/internal/application/day"
	"github.com/majidtech25/my-project02/internal/application/report"
	"github.com/majidtech25/my-project02/internal/application/sales"
	"github.com/majidtech25/my-project02/internal/application/usecase"
	"github.com/majidtech25/my-project02/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	EmployeeUC *usecase.EmployeeUseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	DayUC      *day.DayUseCase
	SaleUC     *sales.SaleUseCase
	CreditUC   *sales.CreditUseCase
	ReportUC   *report.ReportUseCase
	Employees  EmployeeLookup
	Tokens     TokenConfig
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")
	authMW := AuthMiddleware(deps.Tokens, deps.Employees)
	can := RequirePermission

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Employees: el alta es pública solo mientras no exista ningún empleado
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	api.Post("/employees", OptionalAuth(deps.Tokens, deps.Employees), employeeHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", authMW)

	employees := protected.Group("/employees")
	employees.Put("/me/password", employeeHandler.ChangePassword)
	employees.Get("/", can(access.EmployeeManage), employeeHandler.List)
	employees.Get("/:id", can(access.EmployeeManage), employeeHandler.GetByID)
	employees.Put("/:id", can(access.EmployeeManage), employeeHandler.Update)
	employees.Delete("/:id", can(access.EmployeeManage), employeeHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", can(access.CategoryManage), categoryHandler.Create)
	categories.Get("/", can(access.CategoryView), categoryHandler.List)
	categories.Get("/:id", can(access.CategoryView), categoryHandler.GetByID)
	categories.Put("/:id", can(access.CategoryManage), categoryHandler.Update)
	categories.Delete("/:id", can(access.CategoryManage), categoryHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", can(access.SupplierManage), supplierHandler.Create)
	suppliers.Get("/", can(access.SupplierView), supplierHandler.List)
	suppliers.Get("/:id", can(access.SupplierView), supplierHandler.GetByID)
	suppliers.Put("/:id", can(access.SupplierManage), supplierHandler.Update)
	suppliers.Delete("/:id", can(access.SupplierManage), supplierHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", can(access.ProductManage), productHandler.Create)
	products.Get("/", can(access.ProductView), productHandler.List)
	products.Get("/:id", can(access.ProductView), productHandler.GetByID)
	products.Put("/:id", can(access.ProductManage), productHandler.Update)
	products.Delete("/:id", can(access.ProductManage), productHandler.Delete)
	products.Post("/:id/restock", can(access.ProductRestock), productHandler.Restock)

	days := protected.Group("/days")
	dayHandler := NewDayHandler(deps.DayUC)
	days.Post("/open", can(access.DayOpen), dayHandler.Open)
	days.Post("/close", can(access.DayClose), dayHandler.Close)
	days.Get("/current", can(access.DayView), dayHandler.Current)
	days.Get("/", can(access.DayList), dayHandler.List)
	days.Get("/:id", can(access.DayView), dayHandler.GetByID)
	days.Delete("/:id", can(access.DayDelete), dayHandler.Delete)

	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", can(access.SaleCreate), saleHandler.Create)
	salesGroup.Get("/my", can(access.SaleListOwn), saleHandler.ListMine)
	salesGroup.Get("/", can(access.SaleList), saleHandler.List)
	salesGroup.Get("/:id", can(access.SaleView), saleHandler.GetByID)
	salesGroup.Put("/:id", can(access.SaleUpdate), saleHandler.Update)
	salesGroup.Delete("/:id", can(access.SaleDelete), saleHandler.Delete)
	salesGroup.Post("/:id/settle", can(access.SaleSettle), saleHandler.Settle)

	credits := protected.Group("/credits")
	creditHandler := NewCreditHandler(deps.CreditUC)
	credits.Post("/", can(access.CreditCreate), creditHandler.Create)
	credits.Get("/", can(access.CreditList), creditHandler.List)
	credits.Get("/:id", can(access.CreditView), creditHandler.GetByID)
	credits.Post("/:id/clear", can(access.CreditClear), creditHandler.Clear)
	credits.Delete("/:id", can(access.CreditRevoke), creditHandler.Revoke)

	reports := protected.Group("/reports", can(access.ReportView))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/daily", reportHandler.Daily)
	reports.Get("/daily/pdf", reportHandler.DailyPDF)
	reports.Get("/period", reportHandler.Period)
	reports.Get("/credits", reportHandler.Credits)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/suppliers", reportHandler.Suppliers)
	reports.Get("/top-products", reportHandler.TopProducts)
}

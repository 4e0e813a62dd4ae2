package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/majidtech25/my-project02/internal/application/report"
)

// ReportHandler expone los reportes de solo lectura.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Daily godoc
// @Summary      Reporte diario de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha (YYYY-MM-DD), por defecto hoy"
// @Success      200   {object}  dto.SalesReportResponse
// @Router       /api/v1/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	out, err := h.uc.Daily(c.UserContext(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DailyPDF godoc
// @Summary      Reporte diario en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  query  string  false  "Fecha (YYYY-MM-DD), por defecto hoy"
// @Success      200   {file}  binary
// @Router       /api/v1/reports/daily/pdf [get]
func (h *ReportHandler) DailyPDF(c *fiber.Ctx) error {
	doc, filename, err := h.uc.DailyPDF(c.UserContext(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(doc)
}

// Period godoc
// @Summary      Reporte de ventas por periodo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  true  "Hasta (YYYY-MM-DD)"
// @Success      200   {object}  dto.SalesReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/reports/period [get]
func (h *ReportHandler) Period(c *fiber.Ctx) error {
	out, err := h.uc.Period(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Credits godoc
// @Summary      Reporte de créditos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "open | cleared"  default(open)
// @Success      200     {object}  dto.CreditReportResponse
// @Router       /api/v1/reports/credits [get]
func (h *ReportHandler) Credits(c *fiber.Ctx) error {
	out, err := h.uc.Credits(c.UserContext(), c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Productos con stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (por defecto el configurado)"
// @Success      200        {object}  dto.InventoryReportResponse
// @Router       /api/v1/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	var threshold *int
	if raw := c.Query("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "INVALID_QUERY", "threshold debe ser un entero")
		}
		threshold = &n
	}
	out, err := h.uc.Inventory(c.UserContext(), threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Suppliers godoc
// @Summary      Saldos pendientes con proveedores
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplierBalancesResponse
// @Router       /api/v1/reports/suppliers [get]
func (h *ReportHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.uc.SupplierBalances(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "Desde (YYYY-MM-DD), por defecto hoy"
// @Param        to     query  string  false  "Hasta (YYYY-MM-DD), por defecto hoy"
// @Param        limit  query  int     false  "Cantidad de productos"
// @Success      200    {object}  dto.TopProductsResponse
// @Router       /api/v1/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.UserContext(), c.Query("from"), c.Query("to"), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/application/sales"
)

// CreditHandler maneja las peticiones HTTP para Credit.
type CreditHandler struct {
	uc *sales.CreditUseCase
}

// NewCreditHandler construye el handler.
func NewCreditHandler(uc *sales.CreditUseCase) *CreditHandler {
	return &CreditHandler{uc: uc}
}

// Create godoc
// @Summary      Pasar una venta a crédito
// @Tags         credits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCreditRequest  true  "Venta"
// @Success      201   {object}  dto.CreditResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/credits [post]
func (h *CreditHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.SaleID == "" {
		return badRequest(c, "VALIDATION", "sale_id es requerido")
	}
	out, err := h.uc.CreateCredit(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar créditos
// @Tags         credits
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "open | cleared"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.CreditListResponse
// @Router       /api/v1/credits [get]
func (h *CreditHandler) List(c *fiber.Ctx) error {
	var q dto.CreditQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros de consulta inválidos")
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve un crédito.
func (h *CreditHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Saldar crédito
// @Tags         credits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del crédito"
// @Param        body  body  dto.ClearCreditRequest  true  "Medio de pago"
// @Success      200   {object}  dto.CreditResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/credits/{id}/clear [post]
func (h *CreditHandler) Clear(c *fiber.Ctx) error {
	var in dto.ClearCreditRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ClearCredit(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Revoke godoc
// @Summary      Revocar crédito
// @Description  La venta queda pendiente de cobro.
// @Tags         credits
// @Security     Bearer
// @Param        id   path  string  true  "ID del crédito"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/credits/{id} [delete]
func (h *CreditHandler) Revoke(c *fiber.Ctx) error {
	if err := h.uc.RevokeCredit(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

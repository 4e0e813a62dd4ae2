package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/majidtech25/my-project02/internal/application/day"
)

// DayHandler maneja la apertura y cierre de jornadas.
type DayHandler struct {
	uc *day.DayUseCase
}

// NewDayHandler construye el handler.
func NewDayHandler(uc *day.DayUseCase) *DayHandler {
	return &DayHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir el día de hoy
// @Tags         days
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.DayResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/days/open [post]
func (h *DayHandler) Open(c *fiber.Ctx) error {
	out, err := h.uc.OpenDay(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Close godoc
// @Summary      Cerrar el día abierto
// @Description  Falla si quedan créditos abiertos sobre ventas del día.
// @Tags         days
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DayResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/days/close [post]
func (h *DayHandler) Close(c *fiber.Ctx) error {
	out, err := h.uc.CloseDay(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Current godoc
// @Summary      Día abierto actual
// @Tags         days
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DayResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/days/current [get]
func (h *DayHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar días
// @Tags         days
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.DayListResponse
// @Router       /api/v1/days [get]
func (h *DayHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), parsePage(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve un día.
func (h *DayHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un día sin ventas ni créditos
// @Tags         days
// @Security     Bearer
// @Param        id   path  string  true  "ID del día"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/days/{id} [delete]
func (h *DayHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteDay(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/domain"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// Orden importa: el primer sentinel que coincide gana.
var errorMappings = []errorMapping{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInsufficientStock, fiber.StatusBadRequest, "INSUFFICIENT_STOCK"},
	{domain.ErrInactiveEmployee, fiber.StatusBadRequest, "INACTIVE_EMPLOYEE"},
	{domain.ErrPaymentMethodRequired, fiber.StatusBadRequest, "PAYMENT_METHOD_REQUIRED"},
	{domain.ErrInvalidTransition, fiber.StatusBadRequest, "INVALID_TRANSITION"},
	{domain.ErrDuplicateCredit, fiber.StatusBadRequest, "DUPLICATE_CREDIT"},
	{domain.ErrDayAlreadyOpen, fiber.StatusBadRequest, "DAY_ALREADY_OPEN"},
	{domain.ErrDayAlreadyExists, fiber.StatusBadRequest, "DAY_ALREADY_EXISTS"},
	{domain.ErrNoOpenDay, fiber.StatusBadRequest, "NO_OPEN_DAY"},
	{domain.ErrDayClosed, fiber.StatusBadRequest, "DAY_CLOSED"},
	{domain.ErrUnclearedCredits, fiber.StatusBadRequest, "UNCLEARED_CREDITS"},
	{domain.ErrDayHasSales, fiber.StatusBadRequest, "DAY_HAS_SALES"},
	{domain.ErrDayHasCredits, fiber.StatusBadRequest, "DAY_HAS_CREDITS"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrProtectedEmployee, fiber.StatusForbidden, "PROTECTED_EMPLOYEE"},
	{domain.ErrRoleTaken, fiber.StatusConflict, "ROLE_TAKEN"},
	{domain.ErrInUse, fiber.StatusConflict, "IN_USE"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// writeError traduce un error de aplicación a la respuesta HTTP.
// Los errores de sistema se registran y se devuelven con un mensaje genérico.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	if domain.KindOf(err) != domain.KindSystem {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("employee_id", GetUserID(c)).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno, intente de nuevo"})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return badRequest(c, "INVALID_BODY", "cuerpo inválido")
}

// ErrorHandler último recurso de Fiber para errores que no pasaron por writeError (404 de ruta, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "ROUTE_NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return writeError(c, err)
}

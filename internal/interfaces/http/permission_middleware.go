package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/domain/access"
)

// RequirePermission devuelve un middleware Fiber que consulta la tabla de permisos
// para el rol del empleado autenticado. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 Unauthorized → no hay rol en el contexto.
//   - 403 Forbidden    → el rol no puede ejecutar op; el mensaje nombra los roles que sí pueden.
func RequirePermission(op access.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "rol no encontrado en el contexto",
			})
		}
		if !access.Allowed(role, op) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no tiene permiso para " + string(op) +
					" (permitido a: " + strings.Join(access.Roles(op), ", ") + ")",
			})
		}
		return c.Next()
	}
}

package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// EmployeeLookup es lo mínimo que necesita el middleware para releer al empleado.
// Lo implementa repository.EmployeeRepository.
type EmployeeLookup interface {
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
}

// TokenConfig secreto y emisor con los que se validan los tokens.
type TokenConfig struct {
	Secret string
	Issuer string
}

// AuthMiddleware valida el Bearer Token JWT, relee al empleado y deja UserID y Role en c.Locals.
// El token solo aporta el ID del empleado: el rol sale de la base.
func AuthMiddleware(tokens TokenConfig, employees EmployeeLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		return authenticate(c, tokens, employees)
	}
}

// OptionalAuth como AuthMiddleware, pero deja pasar peticiones sin Authorization (sin locals).
func OptionalAuth(tokens TokenConfig, employees EmployeeLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Next()
		}
		return authenticate(c, tokens, employees)
	}
}

func authenticate(c *fiber.Ctx, tokens TokenConfig, employees EmployeeLookup) error {
	parts := strings.SplitN(c.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
	}
	userID, err := jwt.Parse(tokens.Secret, tokens.Issuer, tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
	}
	emp, err := employees.GetByID(c.UserContext(), userID)
	if err != nil {
		return writeError(c, err)
	}
	if emp == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "el empleado del token ya no existe"})
	}
	if !emp.IsActive() {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INACTIVE_EMPLOYEE", Message: "cuenta inactiva"})
	}
	c.Locals(LocalUserID, emp.ID)
	c.Locals(LocalRole, emp.Role)
	return c.Next()
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol vigente del empleado autenticado.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/repository"
	"github.com/majidtech25/my-project02/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de empleados por teléfono y contraseña.
type AuthUseCase struct {
	employees repository.EmployeeRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employees repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{employees: employees, jwtCfg: jwtCfg}
}

// Login verifica teléfono/password, genera JWT y retorna token + empleado.
// Teléfono desconocido o password incorrecto → ErrUnauthorized; empleado inactivo → ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	e, err := uc.employees.GetByPhone(ctx, strings.TrimSpace(in.Phone))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !e.IsActive() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, e.ID, e.Role, time.Duration(uc.jwtCfg.ExpMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Employee: *dto.FromEmployee(e)}, nil
}

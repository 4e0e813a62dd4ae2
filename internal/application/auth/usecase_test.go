package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majidtech25/my-project02/internal/application/auth"
	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/testutil"
	pkgjwt "github.com/majidtech25/my-project02/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "duka-pos-test"}

func TestLogin_OK(t *testing.T) {
	env := testutil.New(t)
	e := env.Employee(t, "Chebet", entity.RoleEmployee, "+254700000003")
	uc := auth.NewAuthUseCase(env.Repos.Employees, jwtCfg)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Phone: " +254700000003 ", Password: testutil.Password})
	require.NoError(t, err)
	assert.Equal(t, e.ID, out.Employee.ID)
	assert.Equal(t, entity.RoleEmployee, out.Employee.Role)

	employeeID, err := pkgjwt.Parse(jwtCfg.Secret, jwtCfg.Issuer, out.Token)
	require.NoError(t, err)
	assert.Equal(t, e.ID, employeeID)

	_, err = pkgjwt.Parse(jwtCfg.Secret, "otro-emisor", out.Token)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	env := testutil.New(t)
	env.Employee(t, "Chebet", entity.RoleEmployee, "+254700000003")
	uc := auth.NewAuthUseCase(env.Repos.Employees, jwtCfg)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Phone: "+254700000003", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Phone: "+254799999999", Password: testutil.Password})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmpleadoInactivo(t *testing.T) {
	env := testutil.New(t)
	e := env.Employee(t, "Chebet", entity.RoleEmployee, "+254700000003")
	e.Status = entity.EmployeeInactive
	require.NoError(t, env.Repos.Employees.Update(context.Background(), e))
	uc := auth.NewAuthUseCase(env.Repos.Employees, jwtCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Phone: "+254700000003", Password: testutil.Password})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

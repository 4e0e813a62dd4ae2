package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/application/usecase"
	"github.com/majidtech25/my-project02/internal/domain"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	"github.com/majidtech25/my-project02/internal/testutil"
)

func newEmployeeUC(env *testutil.Env) *usecase.EmployeeUseCase {
	return usecase.NewEmployeeUseCase(env.Tx, env.Repos, env.Log)
}

func TestBootstrap_SoloConSistemaVacio(t *testing.T) {
	env := testutil.New(t)
	uc := newEmployeeUC(env)
	ctx := context.Background()

	needs, err := uc.NeedsBootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, needs)

	// el rol solicitado se ignora: el primer empleado siempre es employer
	out, err := uc.Bootstrap(ctx, dto.CreateEmployeeRequest{
		Name: "  Amina   Otieno ", Role: entity.RoleEmployee, Phone: "+254700000001", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployer, out.Role)
	assert.Equal(t, "Amina Otieno", out.Name)
	assert.Equal(t, entity.EmployeeActive, out.Status)

	needs, err = uc.NeedsBootstrap(ctx)
	require.NoError(t, err)
	assert.False(t, needs)

	_, err = uc.Bootstrap(ctx, dto.CreateEmployeeRequest{
		Name: "Otro", Phone: "+254700000009", Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateEmployee_RolesUnicos(t *testing.T) {
	env := testutil.New(t)
	uc := newEmployeeUC(env)
	ctx := context.Background()
	env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")

	_, err := uc.Create(ctx, dto.CreateEmployeeRequest{
		Name: "Baraka", Role: entity.RoleEmployer, Phone: "+254700000002", Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrRoleTaken)

	m, err := uc.Create(ctx, dto.CreateEmployeeRequest{
		Name: "Baraka", Role: "Manager", Phone: "+254700000002", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, m.Role)

	_, err = uc.Create(ctx, dto.CreateEmployeeRequest{
		Name: "Chebet", Role: entity.RoleManager, Phone: "+254700000003", Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrRoleTaken)

	// varios employee sí
	for _, phone := range []string{"+254700000004", "+254700000005"} {
		_, err := uc.Create(ctx, dto.CreateEmployeeRequest{
			Name: "Cajero", Role: entity.RoleEmployee, Phone: phone, Password: "secret123",
		})
		require.NoError(t, err)
	}
}

func TestCreateEmployee_Validaciones(t *testing.T) {
	env := testutil.New(t)
	uc := newEmployeeUC(env)
	ctx := context.Background()
	env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")

	cases := []struct {
		name string
		in   dto.CreateEmployeeRequest
		want error
	}{
		{"nombre corto", dto.CreateEmployeeRequest{Name: "A", Role: "employee", Phone: "+254700000002", Password: "secret123"}, domain.ErrInvalidInput},
		{"rol desconocido", dto.CreateEmployeeRequest{Name: "Baraka", Role: "owner", Phone: "+254700000002", Password: "secret123"}, domain.ErrInvalidInput},
		{"teléfono inválido", dto.CreateEmployeeRequest{Name: "Baraka", Role: "employee", Phone: "abc", Password: "secret123"}, domain.ErrInvalidInput},
		{"password corta", dto.CreateEmployeeRequest{Name: "Baraka", Role: "employee", Phone: "+254700000002", Password: "123"}, domain.ErrInvalidInput},
		{"teléfono repetido", dto.CreateEmployeeRequest{Name: "Baraka", Role: "employee", Phone: "+254700000001", Password: "secret123"}, domain.ErrDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUpdateEmployee_EmployerProtegido(t *testing.T) {
	env := testutil.New(t)
	uc := newEmployeeUC(env)
	ctx := context.Background()
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")

	_, err := uc.Update(ctx, boss.ID, dto.UpdateEmployeeRequest{Role: testutil.Ptr(entity.RoleManager)})
	assert.ErrorIs(t, err, domain.ErrProtectedEmployee)

	_, err = uc.Update(ctx, boss.ID, dto.UpdateEmployeeRequest{Status: testutil.Ptr(entity.EmployeeInactive)})
	assert.ErrorIs(t, err, domain.ErrProtectedEmployee)

	out, err := uc.Update(ctx, boss.ID, dto.UpdateEmployeeRequest{Name: testutil.Ptr("Amina Wanjiru")})
	require.NoError(t, err)
	assert.Equal(t, "Amina Wanjiru", out.Name)
	assert.Equal(t, entity.RoleEmployer, out.Role)
}

func TestUpdateEmployee_CambiosDeRolYEstado(t *testing.T) {
	env := testutil.New(t)
	uc := newEmployeeUC(env)
	ctx := context.Background()
	env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	env.Employee(t, "Baraka", entity.RoleManager, "+254700000002")
	clerk := env.Employee(t, "Chebet", entity.RoleEmployee, "+254700000003")

	_, err := uc.Update(ctx, clerk.ID, dto.UpdateEmployeeRequest{Role: testutil.Ptr(entity.RoleManager)})
	assert.ErrorIs(t, err, domain.ErrRoleTaken)

	_, err = uc.Update(ctx, clerk.ID, dto.UpdateEmployeeRequest{Phone: testutil.Ptr("+254700000002")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Update(ctx, clerk.ID, dto.UpdateEmployeeRequest{Status: testutil.Ptr("suspended")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Update(ctx, clerk.ID, dto.UpdateEmployeeRequest{Status: testutil.Ptr(entity.EmployeeInactive)})
	require.NoError(t, err)
	assert.Equal(t, entity.EmployeeInactive, out.Status)

	_, err = uc.Update(ctx, "no-existe", dto.UpdateEmployeeRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	env := testutil.New(t)
	uc := newEmployeeUC(env)
	ctx := context.Background()
	boss := env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	manager := env.Employee(t, "Baraka", entity.RoleManager, "+254700000002")
	clerk := env.Employee(t, "Chebet", entity.RoleEmployee, "+254700000003")
	idle := env.Employee(t, "Dalia", entity.RoleEmployee, "+254700000004")

	assert.ErrorIs(t, uc.Delete(ctx, boss.ID), domain.ErrProtectedEmployee)
	assert.ErrorIs(t, uc.Delete(ctx, manager.ID), domain.ErrProtectedEmployee)

	env.OpenDay(t, clerk.ID)
	assert.ErrorIs(t, uc.Delete(ctx, clerk.ID), domain.ErrInUse)

	require.NoError(t, uc.Delete(ctx, idle.ID))
	_, err := uc.GetByID(ctx, idle.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, idle.ID), domain.ErrNotFound)
}

func TestChangePassword(t *testing.T) {
	env := testutil.New(t)
	uc := newEmployeeUC(env)
	ctx := context.Background()
	clerk := env.Employee(t, "Chebet", entity.RoleEmployee, "+254700000003")

	err := uc.ChangePassword(ctx, clerk.ID, dto.ChangePasswordRequest{CurrentPassword: "incorrecta", NewPassword: "nueva-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.ChangePassword(ctx, clerk.ID, dto.ChangePasswordRequest{CurrentPassword: testutil.Password, NewPassword: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.ChangePassword(ctx, clerk.ID, dto.ChangePasswordRequest{CurrentPassword: testutil.Password, NewPassword: "nueva-clave"}))

	err = uc.ChangePassword(ctx, clerk.ID, dto.ChangePasswordRequest{CurrentPassword: testutil.Password, NewPassword: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "la contraseña anterior ya no sirve")
}

func TestListEmployees_Paginado(t *testing.T) {
	env := testutil.New(t)
	uc := newEmployeeUC(env)
	env.Employee(t, "Amina", entity.RoleEmployer, "+254700000001")
	env.Employee(t, "Baraka", entity.RoleManager, "+254700000002")
	env.Employee(t, "Chebet", entity.RoleEmployee, "+254700000003")

	page, err := uc.List(context.Background(), dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Page.Limit)

	rest, err := uc.List(context.Background(), dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest.Items, 1)
}

package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majidtech25/my-project02/internal/domain/access"
	"github.com/majidtech25/my-project02/internal/domain/entity"
	apphttp "github.com/majidtech25/my-project02/internal/interfaces/http"
	pkgjwt "github.com/majidtech25/my-project02/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "duka-pos-test"
	testExpMin    = 60
)

var testTokens = apphttp.TokenConfig{Secret: testJWTSecret, Issuer: testIssuer}

// fakeEmployees implementa EmployeeLookup sobre un mapa.
type fakeEmployees map[string]*entity.Employee

func (f fakeEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return f[id], nil
}

func employeeWith(role, status string) fakeEmployees {
	return fakeEmployees{testUserID: {ID: testUserID, Name: "Amina", Role: role, Status: status}}
}

// buildTestApp arma una app Fiber con AuthMiddleware + RequirePermission(op)
// y un handler dummy que responde 200 si pasa los middlewares.
func buildTestApp(employees apphttp.EmployeeLookup, op access.Operation) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testTokens, employees),
		apphttp.RequirePermission(op),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
				"role":    apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT para testUserID con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, testUserID, role, testExpMin*time.Minute)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_ManagerAbreDia(t *testing.T) {
	app := buildTestApp(employeeWith(entity.RoleManager, entity.EmployeeActive), access.DayOpen)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleManager))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, entity.RoleManager, body["role"])
}

func TestRequirePermission_EmployeeNoAbreDia(t *testing.T) {
	app := buildTestApp(employeeWith(entity.RoleEmployee, entity.EmployeeActive), access.DayOpen)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleEmployee))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := bodyString(t, resp)
	assert.Contains(t, body, "FORBIDDEN")
	assert.Contains(t, body, "permitido a: employer, manager")
}

func TestRequirePermission_SoloEmployerBorraDias(t *testing.T) {
	app := buildTestApp(employeeWith(entity.RoleManager, entity.EmployeeActive), access.DayDelete)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleManager))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	app = buildTestApp(employeeWith(entity.RoleEmployer, entity.EmployeeActive), access.DayDelete)
	resp = doRequest(t, app, tokenForRole(t, entity.RoleEmployer))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El rol vigente es el guardado, no el del token.
func TestAuthMiddleware_RolDelTokenSeIgnora(t *testing.T) {
	app := buildTestApp(employeeWith(entity.RoleEmployee, entity.EmployeeActive), access.DayOpen)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleEmployer))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un empleado degradado no conserva los permisos de su token")
}

func TestRequirePermission_SinRolEnContexto(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.RequirePermission(access.SaleCreate), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader(t *testing.T) {
	app := buildTestApp(employeeWith(entity.RoleEmployer, entity.EmployeeActive), access.SaleCreate)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(employeeWith(entity.RoleEmployer, entity.EmployeeActive), access.SaleCreate)

	for _, header := range []string{"Bearer token.invalido.aqui", "Basic abc", "token-sin-esquema"} {
		resp := doRequest(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
		assert.Contains(t, bodyString(t, resp), "INVALID_TOKEN", header)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp(employeeWith(entity.RoleEmployer, entity.EmployeeActive), access.SaleCreate)
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, testUserID, entity.RoleEmployer, -time.Minute)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenDeOtroEmisor(t *testing.T) {
	app := buildTestApp(employeeWith(entity.RoleEmployer, entity.EmployeeActive), access.SaleCreate)
	tok, err := pkgjwt.Generate(testJWTSecret, "otro-sistema", testUserID, entity.RoleEmployer, time.Hour)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "INVALID_TOKEN")
}

func TestAuthMiddleware_EmpleadoEliminado(t *testing.T) {
	app := buildTestApp(fakeEmployees{}, access.SaleCreate)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleEmployer))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "INVALID_TOKEN")
}

func TestAuthMiddleware_EmpleadoInactivo(t *testing.T) {
	app := buildTestApp(employeeWith(entity.RoleEmployee, entity.EmployeeInactive), access.SaleCreate)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleEmployee))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "INACTIVE_EMPLOYEE")
}

func TestOptionalAuth_SinHeaderPasa(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.OptionalAuth(testTokens, fakeEmployees{}), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})

	resp := doRequest(t, app, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"user_id":""}`, bodyString(t, resp))

	resp2 := doRequest(t, app, "Bearer basura")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

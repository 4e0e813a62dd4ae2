package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majidtech25/my-project02/internal/application/auth"
	"github.com/majidtech25/my-project02/internal/application/day"
	"github.com/majidtech25/my-project02/internal/application/report"
	"github.com/majidtech25/my-project02/internal/application/sales"
	"github.com/majidtech25/my-project02/internal/application/usecase"
	infrapdf "github.com/majidtech25/my-project02/internal/infrastructure/pdf"
	apphttp "github.com/majidtech25/my-project02/internal/interfaces/http"
	"github.com/majidtech25/my-project02/internal/testutil"
)

// newAPI arma la API completa sobre SQLite en memoria, como en cmd/api.
func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	env := testutil.New(t)
	repos, tx, clock := env.Repos, env.Tx, env.Clock()

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(repos.Employees, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		EmployeeUC: usecase.NewEmployeeUseCase(tx, repos, env.Log),
		CategoryUC: usecase.NewCategoryUseCase(repos.Categories),
		SupplierUC: usecase.NewSupplierUseCase(repos.Suppliers),
		ProductUC:  usecase.NewProductUseCase(tx, repos, env.Log),
		DayUC:      day.NewDayUseCase(tx, repos, clock, env.Log),
		SaleUC:     sales.NewSaleUseCase(tx, repos, clock, env.Log),
		CreditUC:   sales.NewCreditUseCase(tx, repos, clock, env.Log),
		ReportUC:   report.NewReportUseCase(repos, infrapdf.NewMarotoPDFGenerator(), clock, report.Config{BusinessName: "Duka Test"}),
		Employees:  repos.Employees,
		Tokens:     testTokens,
	})
	return app
}

type apiResponse struct {
	status      int
	contentType string
	body        []byte
}

func (r apiResponse) json(t *testing.T) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(r.body, &m), string(r.body))
	return m
}

func call(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) apiResponse {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return apiResponse{status: resp.StatusCode, contentType: resp.Header.Get("Content-Type"), body: raw}
}

func login(t *testing.T, app *fiber.App, phone, password string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{"phone": phone, "password": password})
	require.Equal(t, http.StatusOK, resp.status, string(resp.body))
	tok, _ := resp.json(t)["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestAPI_JornadaCompleta(t *testing.T) {
	app := newAPI(t)

	// Alta inicial sin token: crea el employer
	resp := call(t, app, http.MethodPost, "/api/v1/employees", "", fiber.Map{
		"name": "Amina", "role": "employee", "phone": "+254700000001", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))
	assert.Equal(t, "employer", resp.json(t)["role"])

	resp = call(t, app, http.MethodPost, "/api/v1/employees", "", fiber.Map{
		"name": "Intruso", "role": "employer", "phone": "+254700000009", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.status)

	boss := login(t, app, "+254700000001", "secret123")

	resp = call(t, app, http.MethodPost, "/api/v1/employees", boss, fiber.Map{
		"name": "Chebet", "role": "employee", "phone": "+254700000003", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))
	clerk := login(t, app, "+254700000003", "secret123")

	resp = call(t, app, http.MethodPost, "/api/v1/employees", clerk, fiber.Map{
		"name": "Dalia", "role": "employee", "phone": "+254700000004", "password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, resp.status)

	resp = call(t, app, http.MethodPost, "/api/v1/products", boss, fiber.Map{
		"name": "Sugar 1kg", "sku": "SUG-1", "price": "10.00", "stock": 5,
	})
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))
	productID := resp.json(t)["id"].(string)

	// Sin día abierto no se vende
	sale := fiber.Map{"items": []fiber.Map{{"product_id": productID, "quantity": 2}}, "payment_method": "cash"}
	resp = call(t, app, http.MethodPost, "/api/v1/sales", clerk, sale)
	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, "NO_OPEN_DAY", resp.json(t)["code"])

	resp = call(t, app, http.MethodPost, "/api/v1/days/open", clerk, nil)
	assert.Equal(t, http.StatusForbidden, resp.status)
	resp = call(t, app, http.MethodPost, "/api/v1/days/open", boss, nil)
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))

	resp = call(t, app, http.MethodGet, "/api/v1/days/current", clerk, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "2024-03-15", resp.json(t)["date"])

	resp = call(t, app, http.MethodPost, "/api/v1/sales", clerk, sale)
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))
	created := resp.json(t)
	assert.Equal(t, "20", created["total_amount"])
	assert.Equal(t, "paid", created["status"])

	resp = call(t, app, http.MethodPost, "/api/v1/sales", clerk, fiber.Map{
		"items": []fiber.Map{{"product_id": productID, "quantity": 10}}, "payment_method": "cash",
	})
	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, "INSUFFICIENT_STOCK", resp.json(t)["code"])

	resp = call(t, app, http.MethodGet, "/api/v1/sales/my", clerk, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Len(t, resp.json(t)["items"], 1)

	resp = call(t, app, http.MethodGet, "/api/v1/sales", clerk, nil)
	assert.Equal(t, http.StatusForbidden, resp.status)

	resp = call(t, app, http.MethodGet, "/api/v1/reports/daily", clerk, nil)
	assert.Equal(t, http.StatusForbidden, resp.status)

	resp = call(t, app, http.MethodGet, "/api/v1/reports/daily", boss, nil)
	require.Equal(t, http.StatusOK, resp.status)
	summary := resp.json(t)["sales_summary"].(map[string]interface{})
	assert.Equal(t, float64(1), summary["number_of_sales"])

	resp = call(t, app, http.MethodGet, "/api/v1/reports/daily/pdf", boss, nil)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "application/pdf", resp.contentType)
	assert.True(t, bytes.HasPrefix(resp.body, []byte("%PDF")))

	resp = call(t, app, http.MethodPost, "/api/v1/days/close", boss, nil)
	require.Equal(t, http.StatusOK, resp.status, string(resp.body))
	assert.Equal(t, false, resp.json(t)["is_open"])
}

func TestAPI_ErroresComunes(t *testing.T) {
	app := newAPI(t)

	resp := call(t, app, http.MethodPost, "/api/v1/employees", "", fiber.Map{
		"name": "Amina", "phone": "+254700000001", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.status)
	boss := login(t, app, "+254700000001", "secret123")

	resp = call(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{"phone": "+254700000001", "password": "mala"})
	assert.Equal(t, http.StatusUnauthorized, resp.status)

	resp = call(t, app, http.MethodGet, "/api/v1/sales/no-existe", boss, nil)
	assert.Equal(t, http.StatusNotFound, resp.status)
	assert.Equal(t, "NOT_FOUND", resp.json(t)["code"])

	resp = call(t, app, http.MethodGet, "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.status)

	resp = call(t, app, http.MethodPost, "/api/v1/categories", boss, fiber.Map{"name": "Granos"})
	require.Equal(t, http.StatusCreated, resp.status, string(resp.body))
	resp = call(t, app, http.MethodPost, "/api/v1/categories", boss, fiber.Map{"name": "granos"})
	assert.Equal(t, http.StatusConflict, resp.status)
	assert.Equal(t, "DUPLICATE", resp.json(t)["code"])

	resp = call(t, app, http.MethodGet, "/api/v1/reports/period?from=2024-03-01", boss, nil)
	assert.Equal(t, http.StatusBadRequest, resp.status)
}

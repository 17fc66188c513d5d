package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"walletwise/internal/config"
	"walletwise/internal/logger"
	"walletwise/internal/models"
	"walletwise/internal/validator"
)

// testApp holds the full application stack for end-to-end tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:serverdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Transaction{},
		&models.Budget{},
		&models.SavingsGoal{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	cfg := &config.Config{Env: "test", AllowedOrigins: []string{"http://localhost:3000"}}
	return &testApp{DB: db, Router: NewRouter(cfg, db)}
}

func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) mustRequest(t *testing.T, method, path, body string, want int) *httptest.ResponseRecorder {
	t.Helper()
	rec := app.request(method, path, body)
	if rec.Code != want {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, want, rec.Code, rec.Body.String())
	}
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := parseJSON(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %s", rec.Body.String())
	}
	return errObj["code"].(string)
}

func TestHealth(t *testing.T) {
	app := setupApp(t)
	rec := app.mustRequest(t, http.MethodGet, "/api/health", "", http.StatusOK)
	if parseJSON(t, rec)["status"] != "ok" {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	app := setupApp(t)
	rec := app.request(http.MethodGet, "/api/nope", "")
	if rec.Code != http.StatusNotFound || errorCode(t, rec) != "NOT_FOUND" {
		t.Errorf("expected 404 NOT_FOUND, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/budgets", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected allowed origin echoed, got %q", got)
	}
}

func TestBudgetFlow_SummaryAcrossPeriods(t *testing.T) {
	app := setupApp(t)

	app.mustRequest(t, http.MethodPost, "/api/users",
		`{"userId":"u1","name":"Ada","email":"ada@example.com"}`, http.StatusCreated)

	// Budgets: groceries this month, travel last year
	rec := app.mustRequest(t, http.MethodPost, "/api/budgets",
		`{"userId":"u1","budgetId":"b-food","category":"Food & Dining","amount":500,"date":"2025-03-01"}`, http.StatusCreated)
	if parseJSON(t, rec)["categoryKey"] != "food & dining" {
		t.Errorf("unexpected category key: %s", rec.Body.String())
	}
	app.mustRequest(t, http.MethodPost, "/api/budgets",
		`{"userId":"u1","budgetId":"b-travel","category":"Travel","amount":200,"date":"2024-06-01"}`, http.StatusCreated)

	// Expenses: over the food budget this month, plus income that must not count
	for _, body := range []string{
		`{"userId":"u1","type":"expense","description":"Groceries","amount":400,"category":"Food & Dining","date":"2025-03-10"}`,
		`{"userId":"u1","type":"expense","description":"Dinner","amount":150.5,"category":"food & dining","date":"2025-03-11"}`,
		`{"userId":"u1","type":"income","description":"Salary","amount":5000,"category":"Salary","date":"2025-03-01"}`,
		`{"userId":"u1","type":"expense","description":"Flights","amount":50,"category":"Travel","date":"2024-06-10"}`,
	} {
		app.mustRequest(t, http.MethodPost, "/api/transactions", body, http.StatusCreated)
	}

	rec = app.mustRequest(t, http.MethodGet, "/api/budgets/u1/summary?period=month&date=2025-03-12", "", http.StatusOK)
	month := parseJSON(t, rec)
	if month["totalBudgeted"].(float64) != 500 {
		t.Errorf("expected 500 budgeted this month, got %v", month["totalBudgeted"])
	}
	if month["totalSpent"].(float64) != 550.5 {
		t.Errorf("expected 550.5 spent this month, got %v", month["totalSpent"])
	}
	if month["totalRemaining"].(float64) != -50.5 {
		t.Errorf("expected -50.5 remaining, got %v", month["totalRemaining"])
	}
	if month["status"] != "over_budget" {
		t.Errorf("expected over_budget status, got %v", month["status"])
	}
	alerts := month["alerts"].([]interface{})
	if len(alerts) != 1 || alerts[0].(map[string]interface{})["budgetId"] != "b-food" {
		t.Errorf("expected one alert for b-food, got %v", alerts)
	}

	rec = app.mustRequest(t, http.MethodGet, "/api/budgets/u1/summary?period=year&date=2024-12-31", "", http.StatusOK)
	year := parseJSON(t, rec)
	if year["totalBudgeted"].(float64) != 200 || year["totalSpent"].(float64) != 50 {
		t.Errorf("unexpected 2024 totals: %s", rec.Body.String())
	}
	if year["status"] != "all_within_budget" {
		t.Errorf("expected all_within_budget, got %v", year["status"])
	}

	// Duplicate category for the same user is rejected
	rec = app.request(http.MethodPost, "/api/budgets",
		`{"userId":"u1","category":"Food & Dining","amount":100}`)
	if rec.Code != http.StatusConflict || errorCode(t, rec) != "DUPLICATE_BUDGET" {
		t.Errorf("expected 409 DUPLICATE_BUDGET, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.mustRequest(t, http.MethodGet, "/api/budgets/u1", "", http.StatusOK)
	if got := len(parseJSONArray(t, rec)); got != 2 {
		t.Errorf("expected 2 budgets, got %d", got)
	}
}

func TestUserFlow_Conflicts(t *testing.T) {
	app := setupApp(t)

	app.mustRequest(t, http.MethodPost, "/api/users",
		`{"userId":"u1","name":"Ada","email":"ada@example.com"}`, http.StatusCreated)

	rec := app.request(http.MethodPost, "/api/users", `{"userId":"u1","name":"Ada L","email":"lovelace@example.com"}`)
	if rec.Code != http.StatusConflict || errorCode(t, rec) != "DUPLICATE_USER" {
		t.Errorf("expected 409 DUPLICATE_USER, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request(http.MethodPost, "/api/users", `{"userId":"u2","name":"Grace","email":"ADA@example.com"}`)
	if rec.Code != http.StatusConflict || errorCode(t, rec) != "DUPLICATE_EMAIL" {
		t.Errorf("expected 409 DUPLICATE_EMAIL, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBudgetFlow_UpdateAndDelete(t *testing.T) {
	app := setupApp(t)

	app.mustRequest(t, http.MethodPost, "/api/budgets",
		`{"userId":"u1","budgetId":"b1","category":"Housing","amount":1000}`, http.StatusCreated)

	rec := app.mustRequest(t, http.MethodPut, "/api/budgets/b1", `{"amount":1200.5,"notes":"rent went up"}`, http.StatusOK)
	updated := parseJSON(t, rec)
	if updated["amount"].(float64) != 1200.5 || updated["notes"] != "rent went up" {
		t.Errorf("update not applied: %s", rec.Body.String())
	}

	rec = app.mustRequest(t, http.MethodDelete, "/api/budgets/b1", "", http.StatusOK)
	if parseJSON(t, rec)["message"] == "" {
		t.Errorf("expected a confirmation message")
	}

	rec = app.request(http.MethodDelete, "/api/budgets/b1", "")
	if rec.Code != http.StatusNotFound || errorCode(t, rec) != "BUDGET_NOT_FOUND" {
		t.Errorf("expected 404 BUDGET_NOT_FOUND, got %d: %s", rec.Code, rec.Body.String())
	}

	var audits int64
	app.DB.Model(&models.AuditLog{}).Where("resource_type = ?", "budget").Count(&audits)
	if audits != 3 {
		t.Errorf("expected 3 budget audit entries, got %d", audits)
	}
}

func TestSavingsFlow_AllocateFunds(t *testing.T) {
	app := setupApp(t)

	rec := app.mustRequest(t, http.MethodPost, "/api/savings",
		`{"userId":"u1","savingGoalId":"g1","goalName":"Emergency Fund","targetAmount":5000,"initialAmount":1000}`, http.StatusCreated)
	if parseJSON(t, rec)["initialAmount"].(float64) != 1000 {
		t.Fatalf("unexpected goal: %s", rec.Body.String())
	}

	rec = app.mustRequest(t, http.MethodPut, "/api/savings/g1", `{"allocationAmount":25.5}`, http.StatusOK)
	if got := parseJSON(t, rec)["initialAmount"].(float64); got != 1025.5 {
		t.Errorf("expected 1025.5 after allocation, got %v", got)
	}

	var stored models.SavingsGoal
	if err := app.DB.Where("saving_goal_id = ?", "g1").First(&stored).Error; err != nil {
		t.Fatalf("loading goal: %v", err)
	}
	if stored.InitialAmount != 102550 {
		t.Errorf("expected 102550 cents stored, got %d", stored.InitialAmount)
	}

	for _, body := range []string{`{"allocationAmount":0}`, `{"allocationAmount":-5}`, `{"allocationAmount":"ten"}`, `{"allocationAmount":0.001}`, `{"allocationAmount":10.555}`, `{}`} {
		rec = app.request(http.MethodPut, "/api/savings/g1", body)
		if rec.Code != http.StatusBadRequest || errorCode(t, rec) != "INVALID_ALLOCATION" {
			t.Errorf("%s: expected 400 INVALID_ALLOCATION, got %d: %s", body, rec.Code, rec.Body.String())
		}
	}

	rec = app.request(http.MethodPut, "/api/savings/missing", `{"allocationAmount":100}`)
	if rec.Code != http.StatusNotFound || errorCode(t, rec) != "SAVINGS_GOAL_NOT_FOUND" {
		t.Errorf("expected 404 SAVINGS_GOAL_NOT_FOUND, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.mustRequest(t, http.MethodGet, "/api/savings/u1", "", http.StatusOK)
	goals := parseJSONArray(t, rec)
	if len(goals) != 1 || goals[0].(map[string]interface{})["initialAmount"].(float64) != 1025.5 {
		t.Errorf("rejected allocations must not change the goal: %s", rec.Body.String())
	}

	app.mustRequest(t, http.MethodDelete, "/api/savings/g1", "", http.StatusOK)
	rec = app.mustRequest(t, http.MethodGet, "/api/savings/u1", "", http.StatusOK)
	if got := len(parseJSONArray(t, rec)); got != 0 {
		t.Errorf("expected no goals after delete, got %d", got)
	}
}

func TestTransactionFlow_DollarAmounts(t *testing.T) {
	app := setupApp(t)

	rec := app.mustRequest(t, http.MethodPost, "/api/transactions",
		`{"userId":"u1","type":"expense","description":"Lunch","amount":19.99,"category":"Food & Dining","date":"2025-03-10"}`,
		http.StatusCreated)
	if got := parseJSON(t, rec)["amount"].(float64); got != 19.99 {
		t.Errorf("expected amount 19.99, got %v", got)
	}

	var stored models.Transaction
	if err := app.DB.Where("user_id = ?", "u1").First(&stored).Error; err != nil {
		t.Fatalf("loading transaction: %v", err)
	}
	if stored.Amount != 1999 {
		t.Errorf("expected 1999 cents stored, got %d", stored.Amount)
	}

	rec = app.request(http.MethodPost, "/api/transactions",
		`{"userId":"u1","type":"expense","amount":19.999,"category":"Food & Dining","date":"2025-03-10"}`)
	if rec.Code != http.StatusBadRequest || errorCode(t, rec) != "INVALID_INPUT" {
		t.Errorf("expected 400 INVALID_INPUT for a sub-cent amount, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.mustRequest(t, http.MethodGet, "/api/transactions/u1", "", http.StatusOK)
	txns := parseJSONArray(t, rec)
	if len(txns) != 1 || txns[0].(map[string]interface{})["amount"].(float64) != 19.99 {
		t.Errorf("expected a single 19.99 transaction, got %s", rec.Body.String())
	}
}

func TestTrendsAndDashboard(t *testing.T) {
	app := setupApp(t)

	for _, body := range []string{
		`{"userId":"u1","type":"expense","amount":1200,"category":"Housing","date":"2025-03-12"}`,
		`{"userId":"u1","type":"expense","amount":300,"category":"Savings","date":"2025-03-02"}`,
		`{"userId":"u1","type":"income","amount":5000,"category":"Salary","date":"2025-03-01"}`,
		`{"userId":"u1","type":"expense","amount":700,"category":"Shopping","date":"2025-01-15"}`,
	} {
		app.mustRequest(t, http.MethodPost, "/api/transactions", body, http.StatusCreated)
	}
	app.mustRequest(t, http.MethodPost, "/api/savings",
		`{"userId":"u1","goalName":"Trip","targetAmount":1000,"initialAmount":200}`, http.StatusCreated)

	rec := app.mustRequest(t, http.MethodGet, "/api/transactions/u1/trends?period=month&date=2025-03-12", "", http.StatusOK)
	trends := parseJSON(t, rec)
	spending := trends["spending"].([]interface{})
	if len(spending) != 6 {
		t.Fatalf("expected 6 monthly points, got %d", len(spending))
	}
	march := spending[5].(map[string]interface{})
	if march["name"] != "Mar" || march["totals"].(map[string]interface{})["Housing"].(float64) != 1200 {
		t.Errorf("unexpected March point: %v", march)
	}

	rec = app.mustRequest(t, http.MethodGet, "/api/dashboard/u1?period=month&date=2025-03-12", "", http.StatusOK)
	dash := parseJSON(t, rec)
	cashFlow := dash["cashFlow"].(map[string]interface{})
	if cashFlow["income"].(float64) != 5000 || cashFlow["expenses"].(float64) != 1500 {
		t.Errorf("unexpected cash flow: %v", cashFlow)
	}
	savings := dash["savings"].(map[string]interface{})
	if savings["totalSavings"].(float64) != 300 || savings["unallocated"].(float64) != 100 {
		t.Errorf("unexpected savings overview: %v", savings)
	}
}

func TestAnalytics_InvalidQuery(t *testing.T) {
	app := setupApp(t)

	rec := app.request(http.MethodGet, "/api/budgets/u1/summary?period=fortnight", "")
	if rec.Code != http.StatusBadRequest || errorCode(t, rec) != "INVALID_PERIOD" {
		t.Errorf("expected 400 INVALID_PERIOD, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request(http.MethodGet, "/api/dashboard/u1?date=not-a-date", "")
	if rec.Code != http.StatusBadRequest || errorCode(t, rec) != "INVALID_DATE" {
		t.Errorf("expected 400 INVALID_DATE, got %d: %s", rec.Code, rec.Body.String())
	}
}

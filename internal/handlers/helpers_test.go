package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"luxeledger/internal/insight"
	"luxeledger/internal/ledger"
	"luxeledger/internal/models"
	"luxeledger/internal/pagination"
	"luxeledger/internal/services"
	"luxeledger/internal/validator"
)

// --- mock services ---

type mockTransactionService struct {
	createFn       func(ctx context.Context, input services.TransactionInput) (*services.TransactionResult, error)
	createParsedFn func(ctx context.Context, input services.TransactionInput) (*services.TransactionResult, error)
	updateFn       func(ctx context.Context, id string, input services.TransactionInput) (*services.TransactionResult, error)
	deleteFn       func(id string) error
	getFn          func(id string) (*models.Transaction, error)
	listFn         func(period ledger.PeriodType, anchor models.Date, page pagination.PageRequest) (*services.JournalPage, error)
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, input services.TransactionInput) (*services.TransactionResult, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return &services.TransactionResult{Transaction: &models.Transaction{}}, nil
}

func (m *mockTransactionService) CreateFromParsed(ctx context.Context, input services.TransactionInput) (*services.TransactionResult, error) {
	if m.createParsedFn != nil {
		return m.createParsedFn(ctx, input)
	}
	return &services.TransactionResult{Transaction: &models.Transaction{}}, nil
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, id string, input services.TransactionInput) (*services.TransactionResult, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, input)
	}
	return &services.TransactionResult{Transaction: &models.Transaction{}}, nil
}

func (m *mockTransactionService) DeleteTransaction(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockTransactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) ListJournal(period ledger.PeriodType, anchor models.Date, page pagination.PageRequest) (*services.JournalPage, error) {
	if m.listFn != nil {
		return m.listFn(period, anchor, page)
	}
	return &services.JournalPage{PageResponse: pagination.NewPageResponse([]services.JournalEntry{}, 1, 20, 0)}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

type mockImportService struct {
	importFn func(ctx context.Context, text string) (*services.ImportResult, error)
}

func (m *mockImportService) Import(ctx context.Context, text string) (*services.ImportResult, error) {
	if m.importFn != nil {
		return m.importFn(ctx, text)
	}
	return &services.ImportResult{}, nil
}

var _ services.ImportServicer = (*mockImportService)(nil)

type mockCategoryService struct {
	listFn   func(categoryType *models.CategoryType) ([]models.Category, error)
	createFn func(name string, categoryType models.CategoryType, icon, color string) (*models.Category, error)
}

func (m *mockCategoryService) SeedDefaults() (int, error) { return 0, nil }

func (m *mockCategoryService) ListCategories(categoryType *models.CategoryType) ([]models.Category, error) {
	if m.listFn != nil {
		return m.listFn(categoryType)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) CreateCategory(name string, categoryType models.CategoryType, icon, color string) (*models.Category, error) {
	if m.createFn != nil {
		return m.createFn(name, categoryType, icon, color)
	}
	return &models.Category{Name: name, Type: categoryType}, nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

type mockBudgetService struct {
	setFn      func(category string, limit decimal.Decimal) (*models.Budget, error)
	listFn     func() (*services.BudgetOverview, error)
	evaluateFn func(category string, amount decimal.Decimal) (*ledger.Evaluation, error)
}

func (m *mockBudgetService) SetBudgetLimit(category string, limit decimal.Decimal) (*models.Budget, error) {
	if m.setFn != nil {
		return m.setFn(category, limit)
	}
	return &models.Budget{CategoryName: category, Limit: limit}, nil
}

func (m *mockBudgetService) ListBudgets() (*services.BudgetOverview, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return &services.BudgetOverview{Budgets: []ledger.Progress{}}, nil
}

func (m *mockBudgetService) EvaluateBudget(category string, amount decimal.Decimal) (*ledger.Evaluation, error) {
	if m.evaluateFn != nil {
		return m.evaluateFn(category, amount)
	}
	return &ledger.Evaluation{Category: category}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

type mockStatsService struct {
	periodFn  func(anchor models.Date) (*services.PeriodInfo, error)
	summaryFn func(period ledger.PeriodType, anchor models.Date) (*services.Summary, error)
	recentFn  func() ([]models.Transaction, error)
	insightFn func(ctx context.Context, period ledger.PeriodType, anchor models.Date) (*insight.Insight, error)
}

func (m *mockStatsService) PeriodRange(anchor models.Date) (*services.PeriodInfo, error) {
	if m.periodFn != nil {
		return m.periodFn(anchor)
	}
	return &services.PeriodInfo{Anchor: anchor}, nil
}

func (m *mockStatsService) Summary(period ledger.PeriodType, anchor models.Date) (*services.Summary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(period, anchor)
	}
	return &services.Summary{Period: period}, nil
}

func (m *mockStatsService) Recent() ([]models.Transaction, error) {
	if m.recentFn != nil {
		return m.recentFn()
	}
	return []models.Transaction{}, nil
}

func (m *mockStatsService) Insight(ctx context.Context, period ledger.PeriodType, anchor models.Date) (*insight.Insight, error) {
	if m.insightFn != nil {
		return m.insightFn(ctx, period, anchor)
	}
	return &insight.Insight{Text: insight.GatedText, Source: insight.SourceGated}, nil
}

var _ services.StatsServicer = (*mockStatsService)(nil)

type mockSettingsService struct {
	getFn    func() (*models.Settings, error)
	updateFn func(update services.SettingsUpdate) (*models.Settings, error)
}

func (m *mockSettingsService) GetSettings() (*models.Settings, error) {
	if m.getFn != nil {
		return m.getFn()
	}
	s := models.DefaultSettings()
	return &s, nil
}

func (m *mockSettingsService) UpdateSettings(update services.SettingsUpdate) (*models.Settings, error) {
	if m.updateFn != nil {
		return m.updateFn(update)
	}
	s := models.DefaultSettings()
	return &s, nil
}

func (m *mockSettingsService) Currencies() []models.Currency {
	return models.SupportedCurrencies
}

var _ services.SettingsServicer = (*mockSettingsService)(nil)

type auditCall struct {
	action       string
	resourceType string
	resourceID   string
}

type mockAuditService struct {
	calls  []auditCall
	listFn func(page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

func (m *mockAuditService) Log(action, resourceType, resourceID, _ string, _ map[string]interface{}) {
	m.calls = append(m.calls, auditCall{action: action, resourceType: resourceType, resourceID: resourceID})
}

func (m *mockAuditService) ListAuditLogs(page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	if m.listFn != nil {
		return m.listFn(page)
	}
	resp := pagination.NewPageResponse([]models.AuditLog{}, 1, 20, 0)
	return &resp, nil
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

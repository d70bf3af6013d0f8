package services

import (
	"context"

	"github.com/shopspring/decimal"

	"luxeledger/internal/insight"
	"luxeledger/internal/ledger"
	"luxeledger/internal/models"
	"luxeledger/internal/pagination"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	SeedDefaults() (int, error)
	ListCategories(categoryType *models.CategoryType) ([]models.Category, error)
	CreateCategory(name string, categoryType models.CategoryType, icon, color string) (*models.Category, error)
}

// TransactionInput carries the editable fields of a transaction.
type TransactionInput struct {
	Type     models.TransactionType
	Category string
	Amount   decimal.Decimal
	Note     string
}

// TransactionResult is a saved transaction together with the budget check
// that ran for it, if any.
type TransactionResult struct {
	Transaction *models.Transaction `json:"transaction"`
	Budget      *ledger.Evaluation  `json:"budget,omitempty"`
	AlertSent   bool                `json:"alert_sent"`
}

// JournalEntry is a transaction decorated with its category's icon and color.
type JournalEntry struct {
	models.Transaction
	Icon  string `json:"icon"`
	Color string `json:"color,omitempty"`
}

// JournalPage is one page of the period-filtered journal.
type JournalPage struct {
	pagination.PageResponse[JournalEntry]
	Period ledger.PeriodType `json:"period"`
	Range  *ledger.Range     `json:"range,omitempty"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, input TransactionInput) (*TransactionResult, error)
	CreateFromParsed(ctx context.Context, input TransactionInput) (*TransactionResult, error)
	UpdateTransaction(ctx context.Context, id string, input TransactionInput) (*TransactionResult, error)
	DeleteTransaction(id string) error
	GetTransactionByID(id string) (*models.Transaction, error)
	ListJournal(period ledger.PeriodType, anchor models.Date, page pagination.PageRequest) (*JournalPage, error)
}

// ImportResult reports how many pasted rows were stored and how many were
// skipped as malformed.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportServicer defines the contract for bulk import.
type ImportServicer interface {
	Import(ctx context.Context, text string) (*ImportResult, error)
}

// BudgetOverview is every budget's progress over the current accounting month.
type BudgetOverview struct {
	Period  ledger.Range      `json:"period"`
	Budgets []ledger.Progress `json:"budgets"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	SetBudgetLimit(category string, limit decimal.Decimal) (*models.Budget, error)
	ListBudgets() (*BudgetOverview, error)
	EvaluateBudget(category string, amount decimal.Decimal) (*ledger.Evaluation, error)
}

// PeriodInfo lists the ranges of every period type around an anchor date.
type PeriodInfo struct {
	Anchor        models.Date  `json:"anchor"`
	MonthStartDay int          `json:"month_start_day"`
	Day           ledger.Range `json:"day"`
	Week          ledger.Range `json:"week"`
	Month         ledger.Range `json:"month"`
	Year          ledger.Range `json:"year"`
}

// Summary is the statistics view of one period.
type Summary struct {
	Period   ledger.PeriodType      `json:"period"`
	Range    ledger.Range           `json:"range"`
	Count    int                    `json:"count"`
	Totals   ledger.Totals          `json:"totals"`
	Net      decimal.Decimal        `json:"net"`
	Surplus  bool                   `json:"surplus"`
	Income   []ledger.CategoryTotal `json:"income_by_category"`
	Expense  []ledger.CategoryTotal `json:"expense_by_category"`
	Series   []ledger.Bucket        `json:"series"`
	Position ledger.Position        `json:"position"`
}

// StatsServicer defines the contract for derived statistics.
type StatsServicer interface {
	PeriodRange(anchor models.Date) (*PeriodInfo, error)
	Summary(period ledger.PeriodType, anchor models.Date) (*Summary, error)
	Recent() ([]models.Transaction, error)
	Insight(ctx context.Context, period ledger.PeriodType, anchor models.Date) (*insight.Insight, error)
}

// SettingsUpdate holds the fields to change; nil fields are left alone.
type SettingsUpdate struct {
	UserName       *string
	CurrencyCode   *string
	Theme          *models.Theme
	MonthStartDay  *int
	EnableRollover *bool
	StealthMode    *bool
	DailyReminders *bool
}

// SettingsServicer defines the contract for user settings.
type SettingsServicer interface {
	GetSettings() (*models.Settings, error)
	UpdateSettings(update SettingsUpdate) (*models.Settings, error)
	Currencies() []models.Currency
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
	ListAuditLogs(page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "luxeledger/internal/errors"
	"luxeledger/internal/ledger"
	"luxeledger/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db    *gorm.DB
	clock Clock
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, clock Clock) BudgetServicer {
	return &budgetService{db: db, clock: clock}
}

// SetBudgetLimit caps category at limit, replacing any previous cap. A limit
// <= 0 removes the cap and returns nil.
func (s *budgetService) SetBudgetLimit(category string, limit decimal.Decimal) (*models.Budget, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	if !limit.IsPositive() {
		err := s.db.Where("category_name = ?", category).Delete(&models.Budget{}).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil, nil
	}

	budget := &models.Budget{CategoryName: category, Limit: limit}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stored models.Budget
	if err := s.db.Where("category_name = ?", category).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stored, nil
}

// ListBudgets returns progress for every cap over the accounting month
// containing today.
func (s *budgetService) ListBudgets() (*BudgetOverview, error) {
	settings, err := loadSettings(s.db)
	if err != nil {
		return nil, err
	}
	all, err := loadTransactions(s.db)
	if err != nil {
		return nil, err
	}
	budgets, err := loadBudgets(s.db)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	current := ledger.FilterByPeriod(all, ledger.PeriodMonth, today, settings.MonthStartDay)
	return &BudgetOverview{
		Period:  ledger.MonthRange(today, settings.MonthStartDay),
		Budgets: ledger.BudgetProgress(budgets, current),
	}, nil
}

// EvaluateBudget is a dry run of the check performed when an expense of
// amount is recorded against category.
func (s *budgetService) EvaluateBudget(category string, amount decimal.Decimal) (*ledger.Evaluation, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if amount.IsNegative() {
		return nil, apperrors.ErrInvalidAmount
	}

	ev, _, err := evaluateCurrent(s.db, s.clock, category, amount)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

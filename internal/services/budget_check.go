package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"luxeledger/internal/ledger"
	"luxeledger/internal/logger"
	"luxeledger/internal/models"
	"luxeledger/internal/notify"
)

// evaluateCurrent checks a prospective expense against its category cap over
// the accounting month containing today. The snapshot is read as stored, so
// a transaction being edited still counts with its old amount.
func evaluateCurrent(db *gorm.DB, clock Clock, category string, amount decimal.Decimal) (ledger.Evaluation, *models.Settings, error) {
	settings, err := loadSettings(db)
	if err != nil {
		return ledger.Evaluation{}, nil, err
	}
	all, err := loadTransactions(db)
	if err != nil {
		return ledger.Evaluation{}, nil, err
	}
	budgets, err := loadBudgets(db)
	if err != nil {
		return ledger.Evaluation{}, nil, err
	}

	current := ledger.FilterByPeriod(all, ledger.PeriodMonth, clock.Today(), settings.MonthStartDay)
	return ledger.EvaluateBudget(category, budgets, current, amount), settings, nil
}

// dispatchAlert fires the one-shot alert for an exceeded budget. Delivery
// failures are logged and reported as not sent.
func dispatchAlert(ctx context.Context, n notify.Notifier, ev ledger.Evaluation, settings *models.Settings, txID string) bool {
	if n == nil || !ev.WouldExceed {
		return false
	}
	alert := notify.Alert{
		Evaluation:    ev,
		Currency:      currencyOf(settings),
		TransactionID: txID,
	}
	if err := n.BudgetExceeded(ctx, alert); err != nil {
		logger.Get().Errorw("failed to dispatch budget alert",
			"error", err,
			"category", ev.Category,
			"transaction_id", txID,
		)
		return false
	}
	return true
}

// Package notify delivers one-shot budget alerts.
package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"luxeledger/internal/ledger"
	"luxeledger/internal/models"
)

// Alert is raised when an expense pushes a category past its cap.
type Alert struct {
	Evaluation    ledger.Evaluation
	Currency      models.Currency
	TransactionID string
}

// Title is the short headline of the alert.
func (a Alert) Title() string {
	return "Budget exceeded: " + a.Evaluation.Category
}

// Body describes by how much the cap is exceeded.
func (a Alert) Body() string {
	return fmt.Sprintf("This expense puts %s %s %s over its %s %s limit.",
		a.Evaluation.Category,
		a.Currency.Symbol, a.Evaluation.OverBy.StringFixed(0),
		a.Currency.Symbol, a.Evaluation.Limit.StringFixed(0),
	)
}

// Data is the machine-readable payload attached to push messages.
func (a Alert) Data() map[string]string {
	return map[string]string{
		"type":             "budget_exceeded",
		"category":         a.Evaluation.Category,
		"limit":            a.Evaluation.Limit.String(),
		"spent_before_add": a.Evaluation.SpentBeforeAdd.String(),
		"over_by":          a.Evaluation.OverBy.String(),
		"currency":         a.Currency.Code,
		"transaction_id":   a.TransactionID,
	}
}

// Notifier delivers alerts. Implementations must be safe for concurrent use.
type Notifier interface {
	BudgetExceeded(ctx context.Context, alert Alert) error
}

// LogNotifier writes alerts to a zap logger. It is used when no push
// channel is configured.
type LogNotifier struct {
	log *zap.SugaredLogger
}

// NewLogNotifier returns a Notifier that logs through log.
func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

// BudgetExceeded logs the alert at warn level.
func (n *LogNotifier) BudgetExceeded(_ context.Context, alert Alert) error {
	n.log.Warnw(alert.Title(),
		"category", alert.Evaluation.Category,
		"limit", alert.Evaluation.Limit.String(),
		"spent_before_add", alert.Evaluation.SpentBeforeAdd.String(),
		"over_by", alert.Evaluation.OverBy.String(),
		"transaction_id", alert.TransactionID,
	)
	return nil
}

package ledger

import (
	"github.com/shopspring/decimal"

	"luxeledger/internal/models"
)

// Evaluation is the outcome of checking a prospective expense against its
// category cap.
type Evaluation struct {
	Category       string          `json:"category"`
	Capped         bool            `json:"capped"`
	Limit          decimal.Decimal `json:"limit"`
	SpentBeforeAdd decimal.Decimal `json:"spent_before_add"`
	WouldExceed    bool            `json:"would_exceed"`
	OverBy         decimal.Decimal `json:"over_by"`
}

// FindBudget returns the budget for category, if any.
func FindBudget(budgets []models.Budget, category string) (models.Budget, bool) {
	for _, b := range budgets {
		if b.CategoryName == category {
			return b, true
		}
	}
	return models.Budget{}, false
}

// SpentIn sums the expense amounts recorded against category in txs.
func SpentIn(txs []models.Transaction, category string) decimal.Decimal {
	spent := decimal.Zero
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeExpense && tx.Category == category {
			spent = spent.Add(tx.Amount)
		}
	}
	return spent
}

// EvaluateBudget checks whether adding prospective to category would exceed
// its cap. currentPeriod must hold the transactions of the accounting month
// containing today, regardless of the date of the expense being checked.
//
// An uncapped category (no budget, or a limit <= 0) never exceeds.
// Transactions already in currentPeriod are counted as spent, so
// re-evaluating an edited transaction counts its old amount too.
func EvaluateBudget(category string, budgets []models.Budget, currentPeriod []models.Transaction, prospective decimal.Decimal) Evaluation {
	ev := Evaluation{Category: category}
	b, ok := FindBudget(budgets, category)
	if !ok || !b.Limit.IsPositive() {
		return ev
	}

	ev.Capped = true
	ev.Limit = b.Limit
	ev.SpentBeforeAdd = SpentIn(currentPeriod, category)

	total := ev.SpentBeforeAdd.Add(prospective)
	if total.GreaterThan(b.Limit) {
		ev.WouldExceed = true
		ev.OverBy = total.Sub(b.Limit)
	}
	return ev
}

// SetBudgetLimit returns budgets with the entry for category replaced by the
// new limit. A limit <= 0 removes the entry. The input is not modified.
func SetBudgetLimit(budgets []models.Budget, category string, limit decimal.Decimal) []models.Budget {
	out := make([]models.Budget, 0, len(budgets)+1)
	for _, b := range budgets {
		if b.CategoryName != category {
			out = append(out, b)
		}
	}
	if !limit.IsPositive() {
		return out
	}
	return append(out, models.Budget{CategoryName: category, Limit: limit})
}

// Progress is spending against one budget for the current period.
type Progress struct {
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
	Exceeded   bool            `json:"exceeded"`
}

// BudgetProgress reports spending for every positive budget over the
// transactions of the current period. Remaining goes negative once a cap is
// exceeded.
func BudgetProgress(budgets []models.Budget, currentPeriod []models.Transaction) []Progress {
	out := make([]Progress, 0, len(budgets))
	hundred := decimal.NewFromInt(100)
	for _, b := range budgets {
		if !b.Limit.IsPositive() {
			continue
		}
		spent := SpentIn(currentPeriod, b.CategoryName)
		pct, _ := spent.Div(b.Limit).Mul(hundred).Round(2).Float64()
		out = append(out, Progress{
			Category:   b.CategoryName,
			Limit:      b.Limit,
			Spent:      spent,
			Remaining:  b.Limit.Sub(spent),
			Percentage: pct,
			Exceeded:   spent.GreaterThan(b.Limit),
		})
	}
	return out
}

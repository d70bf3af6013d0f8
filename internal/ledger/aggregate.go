package ledger

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"luxeledger/internal/models"
)

// Totals is income and expense summed separately.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Net is income minus expense.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// Add returns the component-wise sum of t and o.
func (t Totals) Add(o Totals) Totals {
	return Totals{Income: t.Income.Add(o.Income), Expense: t.Expense.Add(o.Expense)}
}

// Surplus reports whether income covers expense.
func (t Totals) Surplus() bool {
	return t.Income.GreaterThanOrEqual(t.Expense)
}

// SumByType partitions txs by type and sums the amounts.
func SumByType(txs []models.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		if tx.Type == models.TransactionTypeIncome {
			t.Income = t.Income.Add(tx.Amount)
		} else {
			t.Expense = t.Expense.Add(tx.Amount)
		}
	}
	return t
}

// HistoricalBalance is the all-time net position as of asOf: income adds,
// expense subtracts. Transactions dated after asOf are not yet realised and
// are left out.
func HistoricalBalance(all []models.Transaction, asOf models.Date) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range all {
		if tx.Date.After(asOf) {
			continue
		}
		balance = balance.Add(tx.Signed())
	}
	return balance
}

// NetMode says which figure a Position carries.
type NetMode string

const (
	NetModeRollover NetMode = "rollover"
	NetModeCashflow NetMode = "cashflow"
)

// Position is the headline balance of the home view.
type Position struct {
	Mode    NetMode         `json:"mode"`
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	Period  Range           `json:"period"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// NetPosition computes the headline balance for today. With rollover enabled
// it is the historical balance; otherwise it is the net cashflow of the
// current accounting month. Income and Expense are always the current
// month's totals.
func NetPosition(all []models.Transaction, settings models.Settings, today models.Date) Position {
	period := MonthRange(today, settings.MonthStartDay)
	totals := SumByType(InRange(all, period))

	pos := Position{
		Period:  period,
		Income:  totals.Income,
		Expense: totals.Expense,
	}
	if settings.EnableRollover {
		pos.Mode = NetModeRollover
		pos.Label = "Net Financial Position"
		pos.Amount = HistoricalBalance(all, today)
	} else {
		pos.Mode = NetModeCashflow
		pos.Label = "Monthly Cashflow"
		pos.Amount = totals.Net()
	}
	return pos
}

// CategoryTotal is the amount spent or earned in one category.
type CategoryTotal struct {
	Category string                 `json:"category"`
	Type     models.TransactionType `json:"type"`
	Amount   decimal.Decimal        `json:"amount"`
	Count    int                    `json:"count"`
}

// SumByCategory groups txs by type and raw category string. Categories with
// no matching Category record still get their own bucket. The result is
// ordered by amount, largest first, then by name.
func SumByCategory(txs []models.Transaction) []CategoryTotal {
	type key struct {
		typ      models.TransactionType
		category string
	}
	idx := make(map[key]int)
	out := make([]CategoryTotal, 0)
	for _, tx := range txs {
		k := key{tx.Type, tx.Category}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, CategoryTotal{Category: tx.Category, Type: tx.Type})
		}
		out[i].Amount = out[i].Amount.Add(tx.Amount)
		out[i].Count++
	}
	slices.SortStableFunc(out, func(a, b CategoryTotal) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

// Bucket is one point of a chart series.
type Bucket struct {
	Key     int             `json:"key"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Series buckets txs for charting: a year by month, a month by day of month,
// a week or a day by weekday. Only buckets with data are returned, ordered
// by key.
func Series(txs []models.Transaction, p PeriodType) []Bucket {
	idx := make(map[int]int)
	out := make([]Bucket, 0)
	for _, tx := range txs {
		k, label := bucketOf(tx.Date, p)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, Bucket{Key: k, Label: label})
		}
		if tx.Type == models.TransactionTypeIncome {
			out[i].Income = out[i].Income.Add(tx.Amount)
		} else {
			out[i].Expense = out[i].Expense.Add(tx.Amount)
		}
	}
	slices.SortFunc(out, func(a, b Bucket) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

func bucketOf(d models.Date, p PeriodType) (int, string) {
	switch p {
	case PeriodYear:
		return int(d.Month()), d.Month().String()[:3]
	case PeriodMonth:
		return d.Day(), d.Format("2")
	default:
		wd := d.Weekday()
		return int(wd), weekdayLabel(wd)
	}
}

func weekdayLabel(wd time.Weekday) string {
	return wd.String()[:3]
}

package ledger

import (
	"cmp"
	"slices"
	"time"

	"luxeledger/internal/models"
)

// RecentWindow is how far back Recent looks.
const RecentWindow = 48 * time.Hour

// FilterByPeriod returns the transactions whose date falls in the period of
// type p around anchor, most recent first. An unknown period type keeps every
// transaction. The input slice is not modified.
func FilterByPeriod(txs []models.Transaction, p PeriodType, anchor models.Date, monthStartDay int) []models.Transaction {
	r, ok := PeriodRange(p, anchor, monthStartDay)
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !ok || r.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	SortRecentFirst(out)
	return out
}

// InRange returns the transactions dated within r, in input order.
func InRange(txs []models.Transaction, r Range) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out
}

// SortRecentFirst orders txs in place by descending Timestamp. Equal
// timestamps keep their relative order.
func SortRecentFirst(txs []models.Transaction) {
	slices.SortStableFunc(txs, func(a, b models.Transaction) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})
}

// Recent returns transactions created less than RecentWindow before now,
// most recent first.
func Recent(txs []models.Transaction, now time.Time) []models.Transaction {
	nowMs := now.UnixMilli()
	window := RecentWindow.Milliseconds()
	out := make([]models.Transaction, 0)
	for _, tx := range txs {
		if nowMs-tx.Timestamp < window {
			out = append(out, tx)
		}
	}
	SortRecentFirst(out)
	return out
}

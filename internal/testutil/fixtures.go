package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"luxeledger/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustDate parses a YYYY-MM-DD literal or fails the test.
func MustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("invalid date literal %q: %v", s, err)
	}
	return d
}

// CreateTestCategory creates a category of the given type with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:  fmt.Sprintf("Test Category %d", nextID()),
		Type:  categoryType,
		Icon:  "🧪",
		Color: models.DefaultCategoryColor,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction dated on the given YYYY-MM-DD
// date. The timestamp is the date's midnight plus a unique offset so
// fixtures created in order sort in that order.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, category string, amount int64, date string) *models.Transaction {
	t.Helper()

	d := MustDate(t, date)
	tx := &models.Transaction{
		Type:      txType,
		Category:  category,
		Amount:    decimal.NewFromInt(amount),
		Date:      d,
		Timestamp: d.MidnightMillis() + nextID(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget caps category at limit.
func CreateTestBudget(t *testing.T, db *gorm.DB, category string, limit int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		CategoryName: category,
		Limit:        decimal.NewFromInt(limit),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestSettings stores settings with the given month start day and
// rollover flag.
func CreateTestSettings(t *testing.T, db *gorm.DB, monthStartDay int, rollover bool) *models.Settings {
	t.Helper()

	settings := models.DefaultSettings()
	settings.MonthStartDay = monthStartDay
	settings.EnableRollover = rollover
	if err := db.Save(&settings).Error; err != nil {
		t.Fatalf("failed to create test settings: %v", err)
	}
	return &settings
}

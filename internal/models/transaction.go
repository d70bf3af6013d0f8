package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts travel as JSON numbers, matching the transaction record shape.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is income or expense.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single ledger entry. Amount is a magnitude; the sign is
// carried by Type. Date is the accounting date and Timestamp (epoch ms) the
// creation instant used for ordering; the two need not agree.
type Transaction struct {
	Base
	Type      TransactionType `gorm:"type:varchar(16);not null;index" json:"type"`
	Category  string          `gorm:"not null;index" json:"category"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"amount"`
	Date      Date            `gorm:"type:varchar(10);not null;index" json:"date"`
	Timestamp int64           `gorm:"not null;index" json:"timestamp"`
	Note      string          `json:"note,omitempty"`
}

// Signed returns the amount with income positive and expense negative.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

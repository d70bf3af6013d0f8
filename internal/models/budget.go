package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a monthly spending cap for one category. A category without a
// row has no cap.
type Budget struct {
	CategoryName string          `gorm:"primaryKey;type:varchar(255)" json:"category"`
	Limit        decimal.Decimal `gorm:"column:limit_amount;type:numeric(20,4);not null" json:"limit"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// DefaultCategoryColor is used for custom categories created without a color.
const DefaultCategoryColor = "#6366f1"

// FallbackCategoryIcon is shown for transactions whose category is unknown.
const FallbackCategoryIcon = "📁"

// Category is a named bucket for transactions. Names are unique within a type;
// transactions reference categories by name, not by foreign key.
type Category struct {
	Base
	Name  string       `gorm:"not null;uniqueIndex:idx_categories_type_name" json:"name"`
	Type  CategoryType `gorm:"type:varchar(16);not null;uniqueIndex:idx_categories_type_name" json:"type"`
	Icon  string       `json:"icon"`
	Color string       `gorm:"type:varchar(7)" json:"color"`
}

package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "luxeledger/internal/errors"
	"luxeledger/internal/models"
)

// DefaultCategories is the catalog seeded into an empty database.
var DefaultCategories = []models.Category{
	{Name: "Salary", Icon: "💰", Color: "#10b981", Type: models.CategoryTypeIncome},
	{Name: "Bonus", Icon: "✨", Color: "#3b82f6", Type: models.CategoryTypeIncome},
	{Name: "Freelance", Icon: "💻", Color: "#8b5cf6", Type: models.CategoryTypeIncome},
	{Name: "Business", Icon: "💼", Color: "#f59e0b", Type: models.CategoryTypeIncome},
	{Name: "Rent", Icon: "🏠", Color: "#f43f5e", Type: models.CategoryTypeExpense},
	{Name: "Food", Icon: "🍕", Color: "#ec4899", Type: models.CategoryTypeExpense},
	{Name: "Household", Icon: "🛒", Color: "#0ea5e9", Type: models.CategoryTypeExpense},
	{Name: "Cig.", Icon: "🚬", Color: "#64748b", Type: models.CategoryTypeExpense},
	{Name: "Transport", Icon: "🚗", Color: "#6366f1", Type: models.CategoryTypeExpense},
	{Name: "Utilities", Icon: "⚡", Color: "#fbbf24", Type: models.CategoryTypeExpense},
	{Name: "Health", Icon: "🏥", Color: "#14b8a6", Type: models.CategoryTypeExpense},
	{Name: "Personal care", Icon: "🧴", Color: "#f472b6", Type: models.CategoryTypeExpense},
	{Name: "Investments", Icon: "📈", Color: "#8b5cf6", Type: models.CategoryTypeExpense},
}

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// SeedDefaults inserts the default catalog when no category exists yet and
// returns how many rows it created.
func (s *categoryService) SeedDefaults() (int, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return 0, nil
	}

	seed := make([]models.Category, len(DefaultCategories))
	copy(seed, DefaultCategories)
	if err := s.db.Create(&seed).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return len(seed), nil
}

// ListCategories returns the catalog, optionally restricted to one type.
func (s *categoryService) ListCategories(categoryType *models.CategoryType) ([]models.Category, error) {
	query := s.db.Model(&models.Category{})
	if categoryType != nil {
		query = query.Where("type = ?", *categoryType)
	}

	var categories []models.Category
	if err := query.Order("created_at").Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// CreateCategory adds a custom category. Names are unique within a type.
func (s *categoryService) CreateCategory(
	name string,
	categoryType models.CategoryType,
	icon string,
	color string,
) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if categoryType != models.CategoryTypeIncome && categoryType != models.CategoryTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be income or expense")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("type = ? AND name = ?", categoryType, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	if color == "" {
		color = models.DefaultCategoryColor
	}
	if icon == "" {
		icon = models.FallbackCategoryIcon
	}

	category := &models.Category{
		Name:  name,
		Type:  categoryType,
		Icon:  icon,
		Color: color,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// IconFor returns the icon and color of the category named name within the
// type's namespace. Unknown names get the fallback icon and no color.
func IconFor(categories []models.Category, name string, txType models.TransactionType) (string, string) {
	for _, c := range categories {
		if c.Name == name && string(c.Type) == string(txType) {
			return c.Icon, c.Color
		}
	}
	return models.FallbackCategoryIcon, ""
}

package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "luxeledger/internal/errors"
	"luxeledger/internal/models"
)

// settingsService handles the single settings row.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the stored settings, creating the defaults on first
// use.
func (s *settingsService) GetSettings() (*models.Settings, error) {
	return loadSettings(s.db)
}

// UpdateSettings applies the non-nil fields of update.
func (s *settingsService) UpdateSettings(update SettingsUpdate) (*models.Settings, error) {
	settings, err := loadSettings(s.db)
	if err != nil {
		return nil, err
	}

	if update.UserName != nil {
		name := strings.TrimSpace(*update.UserName)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user name must not be empty")
		}
		settings.UserName = name
	}
	if update.CurrencyCode != nil {
		c, ok := models.LookupCurrency(strings.ToUpper(strings.TrimSpace(*update.CurrencyCode)))
		if !ok {
			return nil, apperrors.ErrUnsupportedCurrency
		}
		settings.CurrencyCode = c.Code
	}
	if update.Theme != nil {
		if *update.Theme != models.ThemeLight && *update.Theme != models.ThemeDark {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "theme must be light or dark")
		}
		settings.Theme = *update.Theme
	}
	if update.MonthStartDay != nil {
		if *update.MonthStartDay < 1 || *update.MonthStartDay > 31 {
			return nil, apperrors.ErrInvalidMonthStartDay
		}
		settings.MonthStartDay = *update.MonthStartDay
	}
	if update.EnableRollover != nil {
		settings.EnableRollover = *update.EnableRollover
	}
	if update.StealthMode != nil {
		settings.StealthMode = *update.StealthMode
	}
	if update.DailyReminders != nil {
		settings.DailyReminders = *update.DailyReminders
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settings, nil
}

// Currencies lists the supported display currencies.
func (s *settingsService) Currencies() []models.Currency {
	out := make([]models.Currency, len(models.SupportedCurrencies))
	copy(out, models.SupportedCurrencies)
	return out
}

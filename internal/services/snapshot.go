package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "luxeledger/internal/errors"
	"luxeledger/internal/models"
)

// loadTransactions reads every live transaction. The engine works on the
// full list; filtering and ordering happen there.
func loadTransactions(db *gorm.DB) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := db.Order("timestamp DESC").Find(&txs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txs, nil
}

func loadBudgets(db *gorm.DB) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := db.Order("category_name").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// loadSettings returns the stored settings, creating the defaults on first
// use.
func loadSettings(db *gorm.DB) (*models.Settings, error) {
	var settings models.Settings
	err := db.First(&settings, models.SettingsID).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	settings = models.DefaultSettings()
	if err := db.Create(&settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// currencyOf resolves the display currency of settings, defaulting to the
// first supported currency.
func currencyOf(settings *models.Settings) models.Currency {
	if c, ok := models.LookupCurrency(settings.CurrencyCode); ok {
		return c
	}
	return models.SupportedCurrencies[0]
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luxeledger/internal/models"
	"luxeledger/internal/services"
)

// SettingsHandler handles user preferences.
type SettingsHandler struct {
	settingsService services.SettingsServicer
	auditService    services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, auditService: auditService}
}

// UpdateSettingsRequest lists the settings to change. Omitted fields keep
// their value.
type UpdateSettingsRequest struct {
	UserName       *string `json:"user_name" binding:"omitempty,min=1,max=100"`
	CurrencyCode   *string `json:"currency_code" binding:"omitempty,iso4217"`
	Theme          *string `json:"theme" binding:"omitempty,theme"`
	MonthStartDay  *int    `json:"month_start_day" binding:"omitempty,min=1,max=31"`
	EnableRollover *bool   `json:"enable_rollover"`
	StealthMode    *bool   `json:"stealth_mode"`
	DailyReminders *bool   `json:"daily_reminders"`
}

// GetSettings returns the current settings
// @Summary     Get settings
// @Tags        settings
// @Produce     json
// @Success     200 {object} models.Settings
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings changes the settings
// @Summary     Update settings
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body UpdateSettingsRequest true "Fields to change"
// @Success     200 {object} models.Settings
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	update := services.SettingsUpdate{
		UserName:       req.UserName,
		CurrencyCode:   req.CurrencyCode,
		MonthStartDay:  req.MonthStartDay,
		EnableRollover: req.EnableRollover,
		StealthMode:    req.StealthMode,
		DailyReminders: req.DailyReminders,
	}
	if req.Theme != nil {
		theme := models.Theme(*req.Theme)
		update.Theme = &theme
	}

	settings, err := h.settingsService.UpdateSettings(update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(services.AuditUpdateSettings, "settings", "", c.ClientIP(), changedSettings(req))

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func changedSettings(req UpdateSettingsRequest) map[string]interface{} {
	changes := make(map[string]interface{})
	if req.UserName != nil {
		changes["user_name"] = *req.UserName
	}
	if req.CurrencyCode != nil {
		changes["currency_code"] = *req.CurrencyCode
	}
	if req.Theme != nil {
		changes["theme"] = *req.Theme
	}
	if req.MonthStartDay != nil {
		changes["month_start_day"] = *req.MonthStartDay
	}
	if req.EnableRollover != nil {
		changes["enable_rollover"] = *req.EnableRollover
	}
	if req.StealthMode != nil {
		changes["stealth_mode"] = *req.StealthMode
	}
	if req.DailyReminders != nil {
		changes["daily_reminders"] = *req.DailyReminders
	}
	return changes
}

// ListCurrencies returns the supported display currencies
// @Summary     List currencies
// @Tags        settings
// @Produce     json
// @Success     200 {array} models.Currency
// @Router      /currencies [get]
func (h *SettingsHandler) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currencies": h.settingsService.Currencies()})
}

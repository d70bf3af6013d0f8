package models

import "time"

// Theme is the presentation theme stored with the settings.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// SettingsID is the primary key of the single settings row.
const SettingsID = 1

// Settings holds user preferences. Only MonthStartDay and EnableRollover
// affect ledger computations; the rest is display state.
type Settings struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	UserName       string    `gorm:"not null" json:"user_name"`
	CurrencyCode   string    `gorm:"type:varchar(3);not null" json:"currency_code"`
	Theme          Theme     `gorm:"type:varchar(8);not null" json:"theme"`
	MonthStartDay  int       `gorm:"not null" json:"month_start_day"`
	EnableRollover bool      `gorm:"not null" json:"enable_rollover"`
	StealthMode    bool      `gorm:"not null" json:"stealth_mode"`
	DailyReminders bool      `gorm:"not null" json:"daily_reminders"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultSettings returns the settings used before the user saves any.
func DefaultSettings() Settings {
	return Settings{
		ID:             SettingsID,
		UserName:       "Guest",
		CurrencyCode:   "PKR",
		Theme:          ThemeLight,
		MonthStartDay:  1,
		EnableRollover: true,
	}
}

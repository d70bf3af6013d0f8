package models

// Currency describes a display currency. The ledger never converts between
// currencies; the code only picks the symbol shown next to amounts.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SupportedCurrencies lists the currencies a user may select.
var SupportedCurrencies = []Currency{
	{Code: "PKR", Symbol: "Rs", Name: "Pakistani Rupee"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
}

// LookupCurrency returns the supported currency with the given code.
func LookupCurrency(code string) (Currency, bool) {
	for _, c := range SupportedCurrencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

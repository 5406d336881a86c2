package models

import "time"

// CurrencyPlacement controls where the currency symbol is rendered
// relative to the amount.
type CurrencyPlacement string

const (
	CurrencyBefore CurrencyPlacement = "before"
	CurrencyAfter  CurrencyPlacement = "after"
)

// Display format defaults applied when a budget is created without
// explicit settings.
const (
	DefaultCurrency     = "TTD"
	DefaultNumberFormat = "1,234.56"
	DefaultDateFormat   = "DD/MM/YYYY"
)

// Budget is a named workspace. Every account, category group, category,
// transaction, asset, and assignment is scoped to exactly one budget.
type Budget struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Currency          string            `json:"currency"`
	CurrencyPlacement CurrencyPlacement `json:"currency_placement"`
	NumberFormat      string            `json:"number_format"`
	DateFormat        string            `json:"date_format"`
	CreatedAt         time.Time         `json:"created_at"`
}

// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// validCurrencies contains ISO 4217 currency codes.
var validCurrencies = map[string]bool{
	"AED": true, "AUD": true, "BBD": true, "BRL": true, "BSD": true,
	"BZD": true, "CAD": true, "CHF": true, "CNY": true, "COP": true,
	"DKK": true, "DOP": true, "EUR": true, "GBP": true, "GYD": true,
	"HKD": true, "HTG": true, "INR": true, "JMD": true, "JPY": true,
	"KYD": true, "MXN": true, "NOK": true, "NZD": true, "SEK": true,
	"SGD": true, "SRD": true, "TTD": true, "USD": true, "XCD": true,
	"ZAR": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("account_type", validateAccountType)
		_ = v.RegisterValidation("asset_kind", validateAssetKind)
		_ = v.RegisterValidation("currency_placement", validateCurrencyPlacement)
		_ = v.RegisterValidation("budget_month", validateMonth)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "checking", "savings", "credit", "loan":
		return true
	}
	return false
}

func validateAssetKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "property", "vehicle", "investment", "other":
		return true
	}
	return false
}

func validateCurrencyPlacement(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "before", "after":
		return true
	}
	return false
}

func validateMonth(fl validator.FieldLevel) bool {
	return monthRegex.MatchString(fl.Field().String())
}

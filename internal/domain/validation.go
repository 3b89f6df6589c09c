package domain

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidProductName = errors.New("invalid product name")
	ErrAmountTooLarge     = errors.New("amount exceeds maximum allowed")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooWeak    = errors.New("password does not meet requirements")
)

// Validation constants
const (
	MaxProductNameLength = 255
	MinProductNameLength = 1
	MaxMoneyAmount       = "1000000000" // 1 billion
	MinPasswordLength    = 8
	MaxPasswordLength    = 128
)

// Supported currency codes (ISO 4217 subset the platform quotes).
var supportedCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"CNY": true, "AUD": true, "CAD": true, "CHF": true,
	"NGN": true, "GHS": true, "KES": true, "ZAR": true,
	"INR": true, "BRL": true, "MXN": true, "SGD": true,
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SupportedCurrencies returns the quoted currency codes, unsorted.
func SupportedCurrencies() []string {
	out := make([]string, 0, len(supportedCurrencies))
	for code := range supportedCurrencies {
		out = append(out, code)
	}
	return out
}

// ValidateCurrencyCode checks that code is a quoted ISO 4217 code.
func ValidateCurrencyCode(code string) error {
	if len(code) != 3 || !supportedCurrencies[code] {
		return ErrUnsupportedCurrency
	}
	return nil
}

// NormalizeCurrencyCode upper-cases a user-supplied code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateMoneyAmount checks that amount is positive and bounded.
func ValidateMoneyAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	max, _ := decimal.NewFromString(MaxMoneyAmount)
	if amount.GreaterThan(max) {
		return ErrAmountTooLarge
	}
	return nil
}

// ValidateProductName checks product name length.
func ValidateProductName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < MinProductNameLength || len(name) > MaxProductNameLength {
		return ErrInvalidProductName
	}
	return nil
}

// ValidateEmail checks email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword checks password strength bounds.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return ErrPasswordTooWeak
	}
	return nil
}

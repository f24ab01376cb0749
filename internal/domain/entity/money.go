package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// Currency identifies the settlement currency of a money amount
type Currency string

// Supported currencies
const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

// IsValidCurrency validates if the currency is supported
func IsValidCurrency(currency string) bool {
	return currency == string(CurrencyINR) || currency == string(CurrencyUSD)
}

// ParseAmount validates and parses a money string into a decimal.
// Amounts must be non-negative with at most two decimal places; money never
// travels through binary floats.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be negative", errs.ErrInvalidAmount)
	}

	if d.Exponent() < -MaxDecimalPlaces {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	return d, nil
}

// ParsePositiveAmount parses a money string and additionally requires it to be > 0
func ParsePositiveAmount(amount string) (decimal.Decimal, error) {
	d, err := ParseAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	return d, nil
}

// FormatAmount renders a decimal as a fixed two-decimal money string
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(MaxDecimalPlaces)
}

package connector

import (
	"fmt"

	"github.com/shopspring/decimal"

	"payswitch/internal/domain"
)

// MajorFromMinor converts an integer minor-unit amount into its decimal
// major-unit representation for the currency. The conversion is total and
// deterministic; no rounding occurs.
func MajorFromMinor(amount domain.MinorUnit, currency domain.Currency) decimal.Decimal {
	return decimal.New(int64(amount), -currency.Exponent())
}

// MinorFromMajor converts a decimal major-unit amount into integer minor
// units, failing if the value carries more precision than the currency
// allows.
func MinorFromMajor(amount decimal.Decimal, currency domain.Currency) (domain.MinorUnit, error) {
	exp := currency.Exponent()
	scaled := amount.Shift(exp)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("amount %s is not representable in %s minor units", amount, currency)
	}
	return domain.MinorUnit(scaled.IntPart()), nil
}

// MinorUnitConverter is the conversion strategy for processors that
// exchange amounts directly in integer minor units. Conversion is the
// identity; holding the strategy on the adapter keeps the unit convention
// explicit and shared across flows.
type MinorUnitConverter struct{}

// Convert returns the amount unchanged.
func (MinorUnitConverter) Convert(amount domain.MinorUnit, _ domain.Currency) (domain.MinorUnit, error) {
	return amount, nil
}

// Unit reports the convention this strategy produces.
func (MinorUnitConverter) Unit() CurrencyUnit {
	return CurrencyUnitMinor
}

// MajorUnitConverter is the strategy for processors that expect decimal
// major-unit amounts.
type MajorUnitConverter struct{}

// Convert renders the minor-unit amount as a decimal major-unit value.
func (MajorUnitConverter) Convert(amount domain.MinorUnit, currency domain.Currency) (decimal.Decimal, error) {
	return MajorFromMinor(amount, currency), nil
}

// Unit reports the convention this strategy produces.
func (MajorUnitConverter) Unit() CurrencyUnit {
	return CurrencyUnitMajor
}

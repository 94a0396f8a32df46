package accounting

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
)

// ErrInvalidCurrencyConfig indicates a non-base currency with no conversion
// note, or a non-positive rate.
var ErrInvalidCurrencyConfig = errors.New("invalid currency configuration")

// ToBase converts a document-currency amount into the base currency using
// the given rate and the currency's conversion rule. Every conversion in the
// engine goes through this function; no call site recomputes it.
func ToBase(amount decimal.Decimal, currency domain.Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	if currency.IsBase {
		return amount, nil
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: currency %s has non-positive rate %s", ErrInvalidCurrencyConfig, currency.CurrencyCode, rate.String())
	}
	switch currency.RateNote {
	case domain.RateMultiply:
		return amount.Mul(rate), nil
	case domain.RateDivide:
		return amount.Div(rate), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: currency %s has no conversion note", ErrInvalidCurrencyConfig, currency.CurrencyCode)
	}
}

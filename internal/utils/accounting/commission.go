package accounting

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates a non-positive principal amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInvalidRate indicates a negative dealing rate.
	ErrInvalidRate = errors.New("rate must not be negative")
)

// LegAmounts is the result of a commission calculation: the adjusted amounts
// for the customer (debit) and supplier (credit) legs, plus the commission
// itself. Commission is signed; a negative value is a dealing loss and is
// booked on the debit side of the commission account. For any kind,
// Debit - Credit equals the commission line amount, which keeps the voucher
// balanced.
type LegAmounts struct {
	Commission decimal.Decimal
	Debit      decimal.Decimal // Customer / to-party leg
	Credit     decimal.Decimal // Supplier / from-party leg
}

var perLakh = decimal.NewFromInt(100000)

// BankTransferLegs computes commission and leg amounts for bank transfers and
// manager cheques. The dealing spread is quoted per 100,000 of principal.
func BankTransferLegs(amount, sellingRate, purchaseRate decimal.Decimal) (LegAmounts, error) {
	if err := validateDealInputs(amount, sellingRate, purchaseRate); err != nil {
		return LegAmounts{}, err
	}
	unit := amount.Div(perLakh)
	return LegAmounts{
		Commission: unit.Mul(sellingRate.Sub(purchaseRate)),
		Debit:      amount.Add(unit.Mul(sellingRate)),
		Credit:     amount.Add(unit.Mul(purchaseRate)),
	}, nil
}

// TradingLegs computes commission and leg amounts for general trading deals.
// Unlike the transfer kinds, the rates multiply the principal directly. These
// bases are intentionally different business rules; do not unify them.
func TradingLegs(amount, sellingRate, purchaseRate decimal.Decimal) (LegAmounts, error) {
	if err := validateDealInputs(amount, sellingRate, purchaseRate); err != nil {
		return LegAmounts{}, err
	}
	return LegAmounts{
		Commission: amount.Mul(sellingRate.Sub(purchaseRate)),
		Debit:      amount.Mul(sellingRate),
		Credit:     amount.Mul(purchaseRate),
	}, nil
}

// InterpartyLegs applies a user-supplied flat commission to a transfer
// between two parties. Both legs shed the commission, so the commission line
// books twice the flat value.
func InterpartyLegs(amount, commission decimal.Decimal) (LegAmounts, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return LegAmounts{}, ErrInvalidAmount
	}
	return LegAmounts{
		Commission: commission.Mul(decimal.NewFromInt(2)),
		Debit:      amount.Add(commission),
		Credit:     amount.Sub(commission),
	}, nil
}

func validateDealInputs(amount, sellingRate, purchaseRate decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if sellingRate.IsNegative() || purchaseRate.IsNegative() {
		return ErrInvalidRate
	}
	return nil
}

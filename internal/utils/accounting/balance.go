package accounting

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
)

var (
	// ErrUnbalanced indicates base-currency debits and credits do not match.
	ErrUnbalanced = errors.New("voucher lines do not balance")
	// ErrMinLines indicates fewer than two ledger lines.
	ErrMinLines = errors.New("voucher must have at least two ledger lines")
	// ErrOneSidedAmount indicates a line with both or neither of debit/credit set.
	ErrOneSidedAmount = errors.New("ledger line must carry exactly one of debit or credit")
)

// BalanceEpsilon absorbs decimal rounding from per-line currency conversion.
var BalanceEpsilon = decimal.NewFromFloat(0.01)

// ValidateBalanced checks the double-entry invariant over a built line set:
// at least two lines, each line one-sided with a non-negative amount, and
// base-currency debits equal to credits within BalanceEpsilon.
func ValidateBalanced(lines []domain.LedgerLine) error {
	if len(lines) < 2 {
		return ErrMinLines
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		debitSet := !line.Debit.IsZero()
		creditSet := !line.Credit.IsZero()
		if debitSet == creditSet {
			return fmt.Errorf("%w: account %s has debit %s and credit %s", ErrOneSidedAmount, line.AccountID, line.Debit.String(), line.Credit.String())
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: account %s carries a negative amount", ErrOneSidedAmount, line.AccountID)
		}
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}

	if debits.Sub(credits).Abs().GreaterThan(BalanceEpsilon) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s", ErrUnbalanced, debits.String(), credits.String())
	}
	return nil
}

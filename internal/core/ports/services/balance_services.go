package services

import (
	"context"
	"time"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
)

// BalanceSvcFacade derives point-in-time balances and trial-balance
// snapshots from posted ledger lines. All operations are read-only.
type BalanceSvcFacade interface {
	// CashBookBalance returns the account's net movement per currency over
	// posted vouchers.
	CashBookBalance(ctx context.Context, accountID string) ([]domain.CashBookBalance, error)

	// AccountStatement folds the account's lines over the date range into a
	// running-balance sequence, starting from the opening balance as of the
	// range start.
	AccountStatement(ctx context.Context, accountID string, from, to time.Time) (*domain.Statement, error)

	// TrialBalance nets each account's debit and credit totals as of a date.
	TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)
}

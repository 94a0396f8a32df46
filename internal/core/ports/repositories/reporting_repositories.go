package repositories

import (
	"context"
	"time"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries behind
// balance computation. These may run concurrently with postings; they must
// never observe a half-replaced line set.
type ReportingRepository interface {
	// GetCashBookBalance returns per-currency net movement for the account
	// over posted vouchers, via the get_cash_book_balance store function.
	GetCashBookBalance(ctx context.Context, accountID string) ([]domain.CashBookBalance, error)

	// GetCashBookBalanceBefore is the same aggregation restricted to posted
	// vouchers dated strictly before the given date (an opening balance).
	GetCashBookBalanceBefore(ctx context.Context, accountID string, before time.Time) ([]domain.CashBookBalance, error)

	// FindStatementLines returns the account's posted lines within the date
	// range, ascending by voucher date with insertion order as tie-break.
	FindStatementLines(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerLine, error)

	// GetTrialBalanceData returns per-account debit/credit totals across
	// draft and posted vouchers dated on or before asOf.
	GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceData, error)
}

package domain

import (
	"github.com/shopspring/decimal"
)

// CashBookBalance is the net movement of one account in one currency over
// posted vouchers.
type CashBookBalance struct {
	CurrencyID   string          `json:"currencyID"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"` // Sum of debits minus credits, document currency
}

// StatementLine is one ledger line in an account statement, annotated with
// the per-currency running balance after the line and the line's
// base-currency equivalent computed with its stored exchange rate.
type StatementLine struct {
	Line           LedgerLine      `json:"line"`
	RunningBalance decimal.Decimal `json:"runningBalance"` // For the line's currency, after this line
	BaseEquivalent decimal.Decimal `json:"baseEquivalent"`
}

// Statement is the running-balance view of an account over a date range.
type Statement struct {
	Opening []CashBookBalance `json:"opening"` // Balances as of the range start
	Lines   []StatementLine   `json:"lines"`
}

// TrialBalanceRow reports one account's net position as of a date. Exactly
// one of NetDebit/NetCredit is non-zero.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	NetDebit    decimal.Decimal `json:"netDebit"`
	NetCredit   decimal.Decimal `json:"netCredit"`
}

// TrialBalanceData is the raw per-account debit/credit aggregation the store
// returns before netting.
type TrialBalanceData struct {
	AccountID   string
	AccountCode string
	AccountName string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

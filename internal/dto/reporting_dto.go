package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
)

// CashBookBalanceResponse is one per-currency balance of a cashbook account.
type CashBookBalanceResponse struct {
	CurrencyID   string          `json:"currencyID"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
}

// StatementLineResponse is one statement row with its running balance and
// base-currency equivalent.
type StatementLineResponse struct {
	Line           LedgerLineResponse `json:"line"`
	VoucherDate    string             `json:"voucherDate"`
	RunningBalance decimal.Decimal    `json:"runningBalance"`
	BaseEquivalent decimal.Decimal    `json:"baseEquivalent"`
}

// StatementResponse is the running-balance statement of an account.
type StatementResponse struct {
	FromDate string                    `json:"fromDate"`
	ToDate   string                    `json:"toDate"`
	Opening  []CashBookBalanceResponse `json:"opening"`
	Lines    []StatementLineResponse   `json:"lines"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	NetDebit    decimal.Decimal `json:"netDebit"`
	NetCredit   decimal.Decimal `json:"netCredit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToCashBookBalanceResponses converts domain cash-book balances to DTOs.
func ToCashBookBalanceResponses(balances []domain.CashBookBalance) []CashBookBalanceResponse {
	responses := make([]CashBookBalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = CashBookBalanceResponse{
			CurrencyID:   b.CurrencyID,
			CurrencyCode: b.CurrencyCode,
			Balance:      b.Balance,
		}
	}
	return responses
}

// ToStatementResponse converts a domain statement to a DTO response.
func ToStatementResponse(s *domain.Statement, from, to time.Time) StatementResponse {
	resp := StatementResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Opening:  ToCashBookBalanceResponses(s.Opening),
		Lines:    make([]StatementLineResponse, len(s.Lines)),
	}
	for i, sl := range s.Lines {
		resp.Lines[i] = StatementLineResponse{
			Line:           ToLedgerLineResponse(&s.Lines[i].Line),
			VoucherDate:    sl.Line.VoucherDate.Format("2006-01-02"),
			RunningBalance: sl.RunningBalance,
			BaseEquivalent: sl.BaseEquivalent,
		}
	}
	return resp
}

// ToTrialBalanceResponse converts domain trial balance rows to a DTO response
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, asOf time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf: asOf.Format("2006-01-02"),
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			NetDebit:    row.NetDebit,
			NetCredit:   row.NetCredit,
		}
		totalDebit = totalDebit.Add(row.NetDebit)
		totalCredit = totalCredit.Add(row.NetCredit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit

	return response
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
)

// ManualLineRequest is one caller-supplied line of a manual journal.
// Exactly one of debit/credit must be non-zero, in the line's own currency.
type ManualLineRequest struct {
	AccountID  string          `json:"accountID" binding:"required"`
	CurrencyID string          `json:"currencyID"` // Defaults to the base currency
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
}

// PostVoucherRequest carries the validated business inputs for one voucher.
// Which fields apply depends on the kind; the line builders reject inputs
// their kind does not use.
type PostVoucherRequest struct {
	Kind        domain.TransactionKind `json:"kind" binding:"required,txnkind"`
	Date        time.Time              `json:"date" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Status      domain.VoucherStatus   `json:"status"` // Manual journal only; defaults to POSTED

	// Cash entry
	CashbookAccountID string `json:"cashbookAccountID"`
	PartnerAccountID  string `json:"partnerAccountID"`
	IsReceipt         bool   `json:"isReceipt"` // true: money into the cashbook

	// Transfer and trading kinds
	FromAccountID string          `json:"fromAccountID"` // Supplier / from-party
	ToAccountID   string          `json:"toAccountID"`   // Customer / to-party
	Amount        decimal.Decimal `json:"amount"`
	Commission    decimal.Decimal `json:"commission"`   // Interparty flat commission
	SellingRate   decimal.Decimal `json:"sellingRate"`  // Dealing kinds
	PurchaseRate  decimal.Decimal `json:"purchaseRate"` // Dealing kinds

	// Manual journal
	Lines []ManualLineRequest `json:"lines"`
}

// LedgerLineResponse defines the data returned for a ledger line.
type LedgerLineResponse struct {
	LineID       string          `json:"lineID"`
	LineNumber   int             `json:"lineNumber"`
	AccountID    string          `json:"accountID"`
	CurrencyID   string          `json:"currencyID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	DebitDoc     decimal.Decimal `json:"debitDocCurrency"`
	CreditDoc    decimal.Decimal `json:"creditDocCurrency"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Role         string          `json:"role"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID     string               `json:"voucherID"`
	VoucherNumber int64                `json:"voucherNumber"`
	Date          time.Time            `json:"date"`
	Description   string               `json:"description"`
	Kind          string               `json:"kind"`
	Status        string               `json:"status"`
	Lines         []LedgerLineResponse `json:"lines,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

// ListVouchersParams holds parameters for listing vouchers.
type ListVouchersParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListVouchersResponse is a page of vouchers plus the cursor for the next page.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToLedgerLineResponse converts a domain.LedgerLine to LedgerLineResponse DTO.
func ToLedgerLineResponse(l *domain.LedgerLine) LedgerLineResponse {
	return LedgerLineResponse{
		LineID:       l.LineID,
		LineNumber:   l.LineNumber,
		AccountID:    l.AccountID,
		CurrencyID:   l.CurrencyID,
		Debit:        l.Debit,
		Credit:       l.Credit,
		DebitDoc:     l.DebitDoc,
		CreditDoc:    l.CreditDoc,
		ExchangeRate: l.ExchangeRate,
		Role:         string(l.Role),
	}
}

// ToLedgerLineResponses converts a slice of domain.LedgerLine to []LedgerLineResponse.
func ToLedgerLineResponses(lines []domain.LedgerLine) []LedgerLineResponse {
	responses := make([]LedgerLineResponse, len(lines))
	for i := range lines {
		responses[i] = ToLedgerLineResponse(&lines[i])
	}
	return responses
}

// ToVoucherResponse converts a domain.Voucher to VoucherResponse DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:     v.VoucherID,
		VoucherNumber: v.VoucherNumber,
		Date:          v.VoucherDate,
		Description:   v.Description,
		Kind:          string(v.Kind),
		Status:        string(v.Status),
		CreatedAt:     v.CreatedAt,
		CreatedBy:     v.CreatedBy,
	}
	if len(v.Lines) > 0 {
		resp.Lines = ToLedgerLineResponses(v.Lines)
	}
	return resp
}

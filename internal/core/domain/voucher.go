package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus indicates the state of a voucher.
// The status is fixed at creation time; editing a voucher never changes it.
type VoucherStatus string

const (
	Draft  VoucherStatus = "DRAFT"
	Posted VoucherStatus = "POSTED"
)

// LineRole tags what a ledger line books, set when the line is built and
// never inferred later.
type LineRole string

const (
	RolePrincipal  LineRole = "PRINCIPAL"
	RoleCommission LineRole = "COMMISSION"
)

// Voucher represents a single balanced financial event composed of ledger
// lines. It is the unit of atomicity: header and lines are always written
// together.
type Voucher struct {
	VoucherID     string          `json:"voucherID"`     // Primary Key (e.g., UUID)
	VoucherNumber int64           `json:"voucherNumber"` // System-generated, unique, sequential
	VoucherDate   time.Time       `json:"voucherDate"`
	Description   string          `json:"description"`
	Kind          TransactionKind `json:"kind"`
	Status        VoucherStatus   `json:"status"`
	Lines         []LedgerLine    `json:"lines,omitempty"` // Often loaded separately
	AuditFields
}

// LedgerLine is one debit-or-credit movement against one account in one
// currency. Debit/Credit are base-currency amounts; exactly one of them is
// non-zero. DebitDoc/CreditDoc carry the same movement in the line's own
// document currency, consistent with the stored exchange rate.
type LedgerLine struct {
	LineID       string           `json:"lineID"`     // Primary Key (e.g., UUID)
	VoucherID    string           `json:"voucherID"`  // FK -> Voucher.voucherID
	LineNumber   int              `json:"lineNumber"` // 1-based position within the voucher
	AccountID    string           `json:"accountID"` // FK -> Account.accountID
	CurrencyID   string           `json:"currencyID"`
	Debit        decimal.Decimal  `json:"debit"`  // Base currency
	Credit       decimal.Decimal  `json:"credit"` // Base currency
	DebitDoc     decimal.Decimal  `json:"debitDocCurrency"`
	CreditDoc    decimal.Decimal  `json:"creditDocCurrency"`
	ExchangeRate decimal.Decimal  `json:"exchangeRate"` // Rate used for this line
	PurchaseRate *decimal.Decimal `json:"purchaseRate,omitempty"`
	SalesRate    *decimal.Decimal `json:"salesRate,omitempty"`
	Role         LineRole         `json:"role"`
	VoucherDate  time.Time        `json:"voucherDate,omitempty"` // Populated on statement reads
	AuditFields
}

// DocAmount returns the line's document-currency movement signed
// debit-positive.
func (l LedgerLine) DocAmount() decimal.Decimal {
	return l.DebitDoc.Sub(l.CreditDoc)
}

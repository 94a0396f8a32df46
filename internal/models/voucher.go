package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherStatus mirrors domain.VoucherStatus at the persistence layer.
type VoucherStatus string

const (
	Draft  VoucherStatus = "DRAFT"
	Posted VoucherStatus = "POSTED"
)

// Voucher maps a row of the gl_headers table.
type Voucher struct {
	VoucherID     string        `db:"voucher_id"`
	VoucherNumber int64         `db:"voucher_number"`
	VoucherDate   time.Time     `db:"voucher_date"`
	Description   string        `db:"description"`
	Kind          string        `db:"kind"` // FK -> transaction_types.kind
	Status        VoucherStatus `db:"status"`
	AuditFields
}

// LedgerLine maps a row of the gl_transactions table.
type LedgerLine struct {
	LineID       string           `db:"line_id"`
	VoucherID    string           `db:"voucher_id"`
	LineNumber   int              `db:"line_number"`
	AccountID    string           `db:"account_id"`
	CurrencyID   string           `db:"currency_id"`
	Debit        decimal.Decimal  `db:"debit"`
	Credit       decimal.Decimal  `db:"credit"`
	DebitDoc     decimal.Decimal  `db:"debit_doc_currency"`
	CreditDoc    decimal.Decimal  `db:"credit_doc_currency"`
	ExchangeRate decimal.Decimal  `db:"exchange_rate"`
	PurchaseRate *decimal.Decimal `db:"purchase_rate"`
	SalesRate    *decimal.Decimal `db:"sales_rate"`
	Role         string           `db:"line_role"`
	VoucherDate  time.Time        `db:"-"` // Joined from gl_headers on statement reads
	AuditFields
}

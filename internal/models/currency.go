package models

import "github.com/shopspring/decimal"

// Currency maps a row of the currencies table.
type Currency struct {
	CurrencyID   string          `db:"currency_id"`
	CurrencyCode string          `db:"currency_code"`
	Name         string          `db:"name"`
	Symbol       string          `db:"symbol"`
	Rate         decimal.Decimal `db:"rate"`
	RateNote     *string         `db:"exchange_rate_note"` // NULL only for the base currency
	IsBase       bool            `db:"is_base"`
	AuditFields
}

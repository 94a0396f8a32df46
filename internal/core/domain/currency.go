package domain

import "github.com/shopspring/decimal"

// RateNote selects the arithmetic used when converting a document amount
// into the base currency.
type RateNote string

const (
	RateMultiply RateNote = "MULTIPLY"
	RateDivide   RateNote = "DIVIDE"
)

// Currency represents a supported currency together with its conversion rule.
// Exactly one currency system-wide is the base currency; it carries rate 1
// and no rate note.
type Currency struct {
	CurrencyID   string          `json:"currencyID"`   // Primary Key (e.g., UUID)
	CurrencyCode string          `json:"currencyCode"` // Unique (e.g., "USD")
	Name         string          `json:"name"`         // e.g., "US Dollar"
	Symbol       string          `json:"symbol"`       // e.g., "$"
	Rate         decimal.Decimal `json:"rate"`         // Positive; 1 for the base currency
	RateNote     RateNote        `json:"rateNote"`     // Empty only for the base currency
	IsBase       bool            `json:"isBase"`
	AuditFields
}

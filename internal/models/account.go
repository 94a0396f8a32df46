package models

// Account maps a row of the chart_of_accounts table.
type Account struct {
	AccountID     string  `db:"account_id"`
	Code          string  `db:"code"`
	Name          string  `db:"name"`
	Alias         *string `db:"alias"`
	CategoryID    string  `db:"category_id"`
	SubcategoryID string  `db:"subcategory_id"`
	IsCashbook    bool    `db:"is_cashbook"`
	CurrencyID    *string `db:"currency_id"` // Required iff is_cashbook
	IsActive      bool    `db:"is_active"`
	AuditFields
}

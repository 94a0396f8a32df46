package domain

// Account represents a chart-of-accounts entry.
// A cashbook account is fixed to one currency; that currency becomes the
// document currency for lines posted against it.
type Account struct {
	AccountID     string  `json:"accountID"` // Primary Key (e.g., UUID)
	Code          string  `json:"code"`      // Unique user-facing account code
	Name          string  `json:"name"`
	Alias         string  `json:"alias"`         // Optional alternate name
	CategoryID    string  `json:"categoryID"`    // Classification: category
	SubcategoryID string  `json:"subcategoryID"` // Classification: subcategory under the category
	IsCashbook    bool    `json:"isCashbook"`
	CurrencyID    *string `json:"currencyID"` // Required iff IsCashbook
	IsActive      bool    `json:"isActive"`
	AuditFields
}

package mapping

import (
	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	var alias *string
	if d.Alias != "" {
		a := d.Alias
		alias = &a
	}
	return models.Account{
		AccountID:     d.AccountID,
		Code:          d.Code,
		Name:          d.Name,
		Alias:         alias,
		CategoryID:    d.CategoryID,
		SubcategoryID: d.SubcategoryID,
		IsCashbook:    d.IsCashbook,
		CurrencyID:    d.CurrencyID,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	var alias string
	if m.Alias != nil {
		alias = *m.Alias
	}
	return domain.Account{
		AccountID:     m.AccountID,
		Code:          m.Code,
		Name:          m.Name,
		Alias:         alias,
		CategoryID:    m.CategoryID,
		SubcategoryID: m.SubcategoryID,
		IsCashbook:    m.IsCashbook,
		CurrencyID:    m.CurrencyID,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

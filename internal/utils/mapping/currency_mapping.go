package mapping

import (
	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	var note *string
	if d.RateNote != "" {
		n := string(d.RateNote)
		note = &n
	}
	return models.Currency{
		CurrencyID:   d.CurrencyID,
		CurrencyCode: d.CurrencyCode,
		Name:         d.Name,
		Symbol:       d.Symbol,
		Rate:         d.Rate,
		RateNote:     note,
		IsBase:       d.IsBase,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	var note domain.RateNote
	if m.RateNote != nil {
		note = domain.RateNote(*m.RateNote)
	}
	return domain.Currency{
		CurrencyID:   m.CurrencyID,
		CurrencyCode: m.CurrencyCode,
		Name:         m.Name,
		Symbol:       m.Symbol,
		Rate:         m.Rate,
		RateNote:     note,
		IsBase:       m.IsBase,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

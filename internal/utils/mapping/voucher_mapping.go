package mapping

import (
	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:     d.VoucherID,
		VoucherNumber: d.VoucherNumber,
		VoucherDate:   d.VoucherDate,
		Description:   d.Description,
		Kind:          string(d.Kind),
		Status:        models.VoucherStatus(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:     m.VoucherID,
		VoucherNumber: m.VoucherNumber,
		VoucherDate:   m.VoucherDate,
		Description:   m.Description,
		Kind:          domain.TransactionKind(m.Kind),
		Status:        domain.VoucherStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLedgerLine converts a domain LedgerLine to a model LedgerLine
func ToModelLedgerLine(d domain.LedgerLine) models.LedgerLine {
	return models.LedgerLine{
		LineID:       d.LineID,
		VoucherID:    d.VoucherID,
		LineNumber:   d.LineNumber,
		AccountID:    d.AccountID,
		CurrencyID:   d.CurrencyID,
		Debit:        d.Debit,
		Credit:       d.Credit,
		DebitDoc:     d.DebitDoc,
		CreditDoc:    d.CreditDoc,
		ExchangeRate: d.ExchangeRate,
		PurchaseRate: d.PurchaseRate,
		SalesRate:    d.SalesRate,
		Role:         string(d.Role),
		VoucherDate:  d.VoucherDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerLine converts a model LedgerLine to a domain LedgerLine
func ToDomainLedgerLine(m models.LedgerLine) domain.LedgerLine {
	return domain.LedgerLine{
		LineID:       m.LineID,
		VoucherID:    m.VoucherID,
		LineNumber:   m.LineNumber,
		AccountID:    m.AccountID,
		CurrencyID:   m.CurrencyID,
		Debit:        m.Debit,
		Credit:       m.Credit,
		DebitDoc:     m.DebitDoc,
		CreditDoc:    m.CreditDoc,
		ExchangeRate: m.ExchangeRate,
		PurchaseRate: m.PurchaseRate,
		SalesRate:    m.SalesRate,
		Role:         domain.LineRole(m.Role),
		VoucherDate:  m.VoucherDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerLineSlice converts a slice of model LedgerLines to domain LedgerLines
func ToDomainLedgerLineSlice(ms []models.LedgerLine) []domain.LedgerLine {
	ds := make([]domain.LedgerLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerLine(m)
	}
	return ds
}

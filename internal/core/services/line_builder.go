package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/dto"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/utils/accounting"
)

var (
	ErrSameParty        = errors.New("debit and credit parties must differ")
	ErrCashbookRequired = errors.New("account is not a cashbook account")
	ErrNegativeFlatFee  = errors.New("flat commission must not be negative")
	ErrNoManualLines    = errors.New("manual journal requires at least two lines")
)

// buildContext carries the master data resolved once per build: the engine
// configuration, the accounts and currencies the request references, and the
// identifiers shared by every line of the voucher.
type buildContext struct {
	cfg        domain.PostingConfig
	accounts   map[string]domain.Account
	currencies map[string]domain.Currency
	voucherID  string
	userID     string
	now        time.Time
}

// lineBuilder assembles the 2-3 ledger lines for one transaction kind.
// Each kind keeps its own commission basis; the divergent formulas are
// deliberate business rules and must not be unified.
type lineBuilder func(req dto.PostVoucherRequest, bc *buildContext) ([]domain.LedgerLine, error)

var lineBuilders = map[domain.TransactionKind]lineBuilder{
	domain.KindCashEntry:          buildCashEntryLines,
	domain.KindInterpartyTransfer: buildInterpartyLines,
	domain.KindBankTransfer:       buildBankTransferLines,
	domain.KindManagerCheque:      buildBankTransferLines, // same per-100k basis
	domain.KindGeneralTrading:     buildTradingLines,
	domain.KindManualJournal:      buildManualLines,
}

// baseLine creates a line denominated in the base currency: document amounts
// mirror the base amounts and the stored rate is 1.
func (bc *buildContext) baseLine(accountID string, debit, credit decimal.Decimal, role domain.LineRole) domain.LedgerLine {
	return domain.LedgerLine{
		LineID:       uuid.NewString(),
		VoucherID:    bc.voucherID,
		AccountID:    accountID,
		CurrencyID:   bc.cfg.BaseCurrency.CurrencyID,
		Debit:        debit,
		Credit:       credit,
		DebitDoc:     debit,
		CreditDoc:    credit,
		ExchangeRate: decimal.NewFromInt(1),
		Role:         role,
		AuditFields:  bc.auditFields(),
	}
}

func (bc *buildContext) auditFields() domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     bc.now,
		CreatedBy:     bc.userID,
		LastUpdatedAt: bc.now,
		LastUpdatedBy: bc.userID,
	}
}

// commissionLine books the spread income on the configured commission
// account: credited when positive, debited when negative (a dealing loss).
// A zero commission books nothing.
func (bc *buildContext) commissionLine(commission decimal.Decimal) *domain.LedgerLine {
	if commission.IsZero() {
		return nil
	}
	debit := decimal.Zero
	credit := commission
	if commission.IsNegative() {
		debit = commission.Neg()
		credit = decimal.Zero
	}
	line := bc.baseLine(bc.cfg.CommissionAccountID, debit, credit, domain.RoleCommission)
	return &line
}

// buildCashEntryLines books a single cash movement: the cashbook account in
// its own document currency against the partner account in base currency.
func buildCashEntryLines(req dto.PostVoucherRequest, bc *buildContext) ([]domain.LedgerLine, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, accounting.ErrInvalidAmount
	}
	if req.CashbookAccountID == req.PartnerAccountID {
		return nil, ErrSameParty
	}

	cashbook, ok := bc.accounts[req.CashbookAccountID]
	if !ok {
		return nil, fmt.Errorf("%w: cashbook account %s", ErrAccountNotFound, req.CashbookAccountID)
	}
	if !cashbook.IsCashbook || cashbook.CurrencyID == nil {
		return nil, fmt.Errorf("%w: %s", ErrCashbookRequired, req.CashbookAccountID)
	}
	currency, ok := bc.currencies[*cashbook.CurrencyID]
	if !ok {
		return nil, fmt.Errorf("%w: currency %s", accounting.ErrInvalidCurrencyConfig, *cashbook.CurrencyID)
	}

	baseAmount, err := accounting.ToBase(req.Amount, currency, currency.Rate)
	if err != nil {
		return nil, err
	}

	cashLine := domain.LedgerLine{
		LineID:       uuid.NewString(),
		VoucherID:    bc.voucherID,
		AccountID:    cashbook.AccountID,
		CurrencyID:   currency.CurrencyID,
		ExchangeRate: currency.Rate,
		Role:         domain.RolePrincipal,
		AuditFields:  bc.auditFields(),
	}
	var partnerLine domain.LedgerLine
	if req.IsReceipt {
		cashLine.Debit = baseAmount
		cashLine.DebitDoc = req.Amount
		partnerLine = bc.baseLine(req.PartnerAccountID, decimal.Zero, baseAmount, domain.RolePrincipal)
	} else {
		cashLine.Credit = baseAmount
		cashLine.CreditDoc = req.Amount
		partnerLine = bc.baseLine(req.PartnerAccountID, baseAmount, decimal.Zero, domain.RolePrincipal)
	}

	return []domain.LedgerLine{cashLine, partnerLine}, nil
}

// buildInterpartyLines transfers between two parties with an optional flat
// commission shed by both legs, so the commission account books twice the
// flat value.
func buildInterpartyLines(req dto.PostVoucherRequest, bc *buildContext) ([]domain.LedgerLine, error) {
	if req.FromAccountID == req.ToAccountID {
		return nil, ErrSameParty
	}
	if req.Commission.IsNegative() {
		return nil, ErrNegativeFlatFee
	}

	legs, err := accounting.InterpartyLegs(req.Amount, req.Commission)
	if err != nil {
		return nil, err
	}

	lines := []domain.LedgerLine{
		bc.baseLine(req.ToAccountID, legs.Debit, decimal.Zero, domain.RolePrincipal),
		bc.baseLine(req.FromAccountID, decimal.Zero, legs.Credit, domain.RolePrincipal),
	}
	if cl := bc.commissionLine(legs.Commission); cl != nil {
		lines = append(lines, *cl)
	}
	return lines, nil
}

func buildBankTransferLines(req dto.PostVoucherRequest, bc *buildContext) ([]domain.LedgerLine, error) {
	legs, err := accounting.BankTransferLegs(req.Amount, req.SellingRate, req.PurchaseRate)
	if err != nil {
		return nil, err
	}
	return dealLines(req, bc, legs)
}

func buildTradingLines(req dto.PostVoucherRequest, bc *buildContext) ([]domain.LedgerLine, error) {
	legs, err := accounting.TradingLegs(req.Amount, req.SellingRate, req.PurchaseRate)
	if err != nil {
		return nil, err
	}
	return dealLines(req, bc, legs)
}

// dealLines books the adjusted customer and supplier legs of a dealing kind
// plus the commission line. The principal lines record the rates the deal
// was struck at.
func dealLines(req dto.PostVoucherRequest, bc *buildContext, legs accounting.LegAmounts) ([]domain.LedgerLine, error) {
	if req.FromAccountID == req.ToAccountID {
		return nil, ErrSameParty
	}

	purchase := req.PurchaseRate
	sales := req.SellingRate

	customer := bc.baseLine(req.ToAccountID, legs.Debit, decimal.Zero, domain.RolePrincipal)
	customer.PurchaseRate = &purchase
	customer.SalesRate = &sales
	supplier := bc.baseLine(req.FromAccountID, decimal.Zero, legs.Credit, domain.RolePrincipal)
	supplier.PurchaseRate = &purchase
	supplier.SalesRate = &sales

	lines := []domain.LedgerLine{customer, supplier}
	if cl := bc.commissionLine(legs.Commission); cl != nil {
		lines = append(lines, *cl)
	}
	return lines, nil
}

// buildManualLines converts caller-supplied journal lines, each in its own
// currency, into base-currency ledger lines.
func buildManualLines(req dto.PostVoucherRequest, bc *buildContext) ([]domain.LedgerLine, error) {
	if len(req.Lines) < 2 {
		return nil, ErrNoManualLines
	}

	lines := make([]domain.LedgerLine, 0, len(req.Lines))
	for _, lr := range req.Lines {
		currency := bc.cfg.BaseCurrency
		if lr.CurrencyID != "" {
			c, ok := bc.currencies[lr.CurrencyID]
			if !ok {
				return nil, fmt.Errorf("%w: currency %s", accounting.ErrInvalidCurrencyConfig, lr.CurrencyID)
			}
			currency = c
		}

		line := domain.LedgerLine{
			LineID:       uuid.NewString(),
			VoucherID:    bc.voucherID,
			AccountID:    lr.AccountID,
			CurrencyID:   currency.CurrencyID,
			ExchangeRate: currency.Rate,
			Role:         domain.RolePrincipal,
			AuditFields:  bc.auditFields(),
		}
		switch {
		case !lr.Debit.IsZero() && lr.Credit.IsZero():
			base, err := accounting.ToBase(lr.Debit, currency, currency.Rate)
			if err != nil {
				return nil, err
			}
			line.Debit = base
			line.DebitDoc = lr.Debit
		case !lr.Credit.IsZero() && lr.Debit.IsZero():
			base, err := accounting.ToBase(lr.Credit, currency, currency.Rate)
			if err != nil {
				return nil, err
			}
			line.Credit = base
			line.CreditDoc = lr.Credit
		default:
			return nil, fmt.Errorf("%w: account %s", accounting.ErrOneSidedAmount, lr.AccountID)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

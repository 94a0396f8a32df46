package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	portsrepo "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/repositories"
	portssvc "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/services"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/middleware"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/utils/accounting"
)

// balanceService derives balances and reports from the posted ledger. It
// holds no state of its own; every call reads through the repositories.
type balanceService struct {
	reportingRepo portsrepo.ReportingRepository
	currencyRepo  portsrepo.CurrencyRepositoryFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(
	reportingRepo portsrepo.ReportingRepository,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
) portssvc.BalanceSvcFacade {
	return &balanceService{
		reportingRepo: reportingRepo,
		currencyRepo:  currencyRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// CashBookBalance returns the account's per-currency net movement over
// posted vouchers. The aggregation runs inside the store so it always sees
// a consistent line set.
func (s *balanceService) CashBookBalance(ctx context.Context, accountID string) ([]domain.CashBookBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	balances, err := s.reportingRepo.GetCashBookBalance(ctx, accountID)
	if err != nil {
		logger.Error("Failed to get cash book balance", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to get cash book balance for account %s: %w", accountID, err)
	}
	return balances, nil
}

// AccountStatement builds the running-balance view of an account over a
// date range: the opening balances as of the range start, then each line in
// order with the per-currency balance after it and its base equivalent at
// the rate stored on the line.
func (s *balanceService) AccountStatement(ctx context.Context, accountID string, from, to time.Time) (*domain.Statement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	opening, err := s.reportingRepo.GetCashBookBalanceBefore(ctx, accountID, from)
	if err != nil {
		logger.Error("Failed to get opening balance", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to get opening balance for account %s: %w", accountID, err)
	}

	lines, err := s.reportingRepo.FindStatementLines(ctx, accountID, from, to)
	if err != nil {
		logger.Error("Failed to get statement lines", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to get statement lines for account %s: %w", accountID, err)
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch currencies: %w", err)
	}
	currencyMap := make(map[string]domain.Currency, len(currencies))
	for _, c := range currencies {
		currencyMap[c.CurrencyID] = c
	}

	running := make(map[string]decimal.Decimal, len(opening))
	for _, b := range opening {
		running[b.CurrencyID] = b.Balance
	}

	stmtLines := make([]domain.StatementLine, 0, len(lines))
	for _, line := range lines {
		doc := line.DocAmount()
		running[line.CurrencyID] = running[line.CurrencyID].Add(doc)

		currency, ok := currencyMap[line.CurrencyID]
		if !ok {
			return nil, fmt.Errorf("%w: currency %s", accounting.ErrInvalidCurrencyConfig, line.CurrencyID)
		}
		baseEq, err := accounting.ToBase(doc, currency, line.ExchangeRate)
		if err != nil {
			return nil, fmt.Errorf("failed to convert line %s to base: %w", line.LineID, err)
		}

		stmtLines = append(stmtLines, domain.StatementLine{
			Line:           line,
			RunningBalance: running[line.CurrencyID],
			BaseEquivalent: baseEq,
		})
	}

	logger.Info("Account statement built",
		slog.String("account_id", accountID),
		slog.Int("line_count", len(stmtLines)))
	return &domain.Statement{Opening: opening, Lines: stmtLines}, nil
}

// TrialBalance nets each account's totals as of a date. Accounts whose
// debits and credits cancel exactly are omitted; the returned rows are
// ordered by account code and their net debits always equal their net
// credits in sum.
func (s *balanceService) TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	data, err := s.reportingRepo.GetTrialBalanceData(ctx, asOf)
	if err != nil {
		logger.Error("Failed to get trial balance data", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get trial balance data: %w", err)
	}

	rows := make([]domain.TrialBalanceRow, 0, len(data))
	for _, d := range data {
		net := d.TotalDebit.Sub(d.TotalCredit)
		if net.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{
			AccountID:   d.AccountID,
			AccountCode: d.AccountCode,
			AccountName: d.AccountName,
		}
		if net.IsPositive() {
			row.NetDebit = net
			row.NetCredit = decimal.Zero
		} else {
			row.NetDebit = decimal.Zero
			row.NetCredit = net.Neg()
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].AccountCode < rows[j].AccountCode
	})

	logger.Info("Trial balance computed", slog.Int("account_count", len(rows)))
	return rows, nil
}

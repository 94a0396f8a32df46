package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	portsrepo "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/repositories"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/models"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/utils/mapping"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetCashBookBalance returns the account's per-currency net movement over
// posted vouchers via the get_cash_book_balance store function, so the
// aggregation always sees a consistent line set.
func (r *reportingRepository) GetCashBookBalance(ctx context.Context, accountID string) ([]domain.CashBookBalance, error) {
	query := `SELECT currency_id, currency_code, balance FROM get_cash_book_balance($1);`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("error querying cash book balance for account %s: %w", accountID, err)
	}
	defer rows.Close()

	balances := []domain.CashBookBalance{}
	for rows.Next() {
		var b domain.CashBookBalance
		if err := rows.Scan(&b.CurrencyID, &b.CurrencyCode, &b.Balance); err != nil {
			return nil, fmt.Errorf("error scanning cash book balance row: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash book balance rows: %w", err)
	}
	return balances, nil
}

// GetCashBookBalanceBefore is the opening-balance variant: the same
// aggregation restricted to posted vouchers dated strictly before the
// given date.
func (r *reportingRepository) GetCashBookBalanceBefore(ctx context.Context, accountID string, before time.Time) ([]domain.CashBookBalance, error) {
	query := `
		SELECT
			t.currency_id,
			c.currency_code,
			SUM(t.debit_doc_currency - t.credit_doc_currency) AS balance
		FROM gl_transactions t
		JOIN gl_headers h ON t.voucher_id = h.voucher_id
		JOIN currencies c ON t.currency_id = c.currency_id
		WHERE t.account_id = $1
			AND h.status = 'POSTED'
			AND h.voucher_date < $2
		GROUP BY t.currency_id, c.currency_code
		ORDER BY c.currency_code;
	`

	rows, err := r.Pool.Query(ctx, query, accountID, before)
	if err != nil {
		return nil, fmt.Errorf("error querying opening balance for account %s: %w", accountID, err)
	}
	defer rows.Close()

	balances := []domain.CashBookBalance{}
	for rows.Next() {
		var b domain.CashBookBalance
		if err := rows.Scan(&b.CurrencyID, &b.CurrencyCode, &b.Balance); err != nil {
			return nil, fmt.Errorf("error scanning opening balance row: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating opening balance rows: %w", err)
	}
	return balances, nil
}

// FindStatementLines returns the account's posted lines in the date range,
// ascending by voucher date with posting order and line number as tie-break.
func (r *reportingRepository) FindStatementLines(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerLine, error) {
	query := `
		SELECT t.line_id, t.voucher_id, t.line_number, t.account_id, t.currency_id,
		       t.debit, t.credit, t.debit_doc_currency, t.credit_doc_currency,
		       t.exchange_rate, t.purchase_rate, t.sales_rate, t.line_role,
		       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
		       h.voucher_date
		FROM gl_transactions t
		JOIN gl_headers h ON t.voucher_id = h.voucher_id
		WHERE t.account_id = $1
			AND h.status = 'POSTED'
			AND h.voucher_date >= $2
			AND h.voucher_date <= $3
		ORDER BY h.voucher_date, h.created_at, t.line_number;
	`

	rows, err := r.Pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying statement lines for account %s: %w", accountID, err)
	}
	defer rows.Close()

	lines := []models.LedgerLine{}
	for rows.Next() {
		var m models.LedgerLine
		err := rows.Scan(
			&m.LineID,
			&m.VoucherID,
			&m.LineNumber,
			&m.AccountID,
			&m.CurrencyID,
			&m.Debit,
			&m.Credit,
			&m.DebitDoc,
			&m.CreditDoc,
			&m.ExchangeRate,
			&m.PurchaseRate,
			&m.SalesRate,
			&m.Role,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.VoucherDate,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning statement line row: %w", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating statement line rows: %w", err)
	}

	return mapping.ToDomainLedgerLineSlice(lines), nil
}

// GetTrialBalanceData retrieves per-account base-currency totals as of a
// specific date. Draft vouchers are included so the working trial balance
// covers everything entered.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceData, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			SUM(t.debit) AS total_debit,
			SUM(t.credit) AS total_credit
		FROM gl_transactions t
		JOIN chart_of_accounts a ON t.account_id = a.account_id
		JOIN gl_headers h ON t.voucher_id = h.voucher_id
		WHERE h.voucher_date <= $1
		GROUP BY a.account_id, a.code, a.name
	`

	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceData{}
	for rows.Next() {
		var d domain.TrialBalanceData
		if err := rows.Scan(
			&d.AccountID,
			&d.AccountCode,
			&d.AccountName,
			&d.TotalDebit,
			&d.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	return result, nil
}

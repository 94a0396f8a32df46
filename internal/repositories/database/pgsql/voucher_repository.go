package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/apperrors"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	portsrepo "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/repositories"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/models"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/utils/mapping"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/utils/pagination"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher and ledger line data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxVoucherRepository implements portsrepo.VoucherRepositoryFacade
var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

const lineInsertQuery = `
	INSERT INTO gl_transactions (
		line_id, voucher_id, line_number, account_id, currency_id,
		debit, credit, debit_doc_currency, credit_doc_currency,
		exchange_rate, purchase_rate, sales_rate, line_role,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
`

// queueLineInserts adds one insert per ledger line to the batch.
func queueLineInserts(batch *pgx.Batch, lines []domain.LedgerLine) {
	for _, line := range lines {
		m := mapping.ToModelLedgerLine(line)
		batch.Queue(lineInsertQuery,
			m.LineID,
			m.VoucherID,
			m.LineNumber,
			m.AccountID,
			m.CurrencyID,
			m.Debit,
			m.Credit,
			m.DebitDoc,
			m.CreditDoc,
			m.ExchangeRate,
			m.PurchaseRate,
			m.SalesRate,
			m.Role,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
}

// SaveVoucher claims the next voucher number and inserts the header and all
// lines within a single DB transaction.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.LedgerLine) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	// Will be ignored if the transaction is committed successfully
	defer r.Rollback(ctx, tx)

	// 1. Claim the next sequential voucher number inside the transaction
	var voucherNumber int64
	if err := tx.QueryRow(ctx, `SELECT nextval('gl_voucher_number_seq');`).Scan(&voucherNumber); err != nil {
		return 0, apperrors.NewAppError(500, "failed to claim voucher number", err)
	}

	// 2. Insert the header
	m := mapping.ToModelVoucher(voucher)
	headerQuery := `
		INSERT INTO gl_headers (
			voucher_id, voucher_number, voucher_date, description, kind, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.VoucherID,
		voucherNumber,
		m.VoucherDate,
		m.Description,
		m.Kind,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert voucher "+m.VoucherID, err)
	}

	// 3. Insert all lines as one batch
	batch := &pgx.Batch{}
	queueLineInserts(batch, lines)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return 0, apperrors.NewAppError(500, "failed to execute line batch for voucher "+m.VoucherID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return voucherNumber, nil
}

// ReplaceVoucherLines swaps the voucher's full line set and updates the
// header scalar fields within a single DB transaction. The header row is
// locked first to serialize concurrent edits of the same voucher; the
// voucher number and status columns are left untouched.
func (r *PgxVoucherRepository) ReplaceVoucherLines(ctx context.Context, voucher domain.Voucher, lines []domain.LedgerLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// 1. Lock the header row
	var lockedID string
	err = tx.QueryRow(ctx, `SELECT voucher_id FROM gl_headers WHERE voucher_id = $1 FOR UPDATE;`, voucher.VoucherID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock voucher "+voucher.VoucherID, err)
	}

	// 2. Update the header scalars
	m := mapping.ToModelVoucher(voucher)
	updateQuery := `
		UPDATE gl_headers
		SET voucher_date = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE voucher_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		m.VoucherID,
		m.VoucherDate,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update voucher "+m.VoucherID, err)
	}

	// 3. Delete the existing line set
	if _, err := tx.Exec(ctx, `DELETE FROM gl_transactions WHERE voucher_id = $1;`, m.VoucherID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for voucher "+m.VoucherID, err)
	}

	// 4. Insert the replacement lines as one batch
	batch := &pgx.Batch{}
	queueLineInserts(batch, lines)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line batch for voucher "+m.VoucherID, err)
	}

	return r.Commit(ctx, tx)
}

const voucherColumns = `voucher_id, voucher_number, voucher_date, description, kind, status, created_at, created_by, last_updated_at, last_updated_by`

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.VoucherNumber,
		&m.VoucherDate,
		&m.Description,
		&m.Kind,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindVoucherByID retrieves a voucher header by its ID.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM gl_headers WHERE voucher_id = $1;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher by ID "+voucherID, err)
	}
	d := mapping.ToDomainVoucher(m)
	return &d, nil
}

// FindLinesByVoucherID retrieves all ledger lines of a voucher in line
// number order, which is the order they were built in.
func (r *PgxVoucherRepository) FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.LedgerLine, error) {
	query := `
		SELECT line_id, voucher_id, line_number, account_id, currency_id,
		       debit, credit, debit_doc_currency, credit_doc_currency,
		       exchange_rate, purchase_rate, sales_rate, line_role,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM gl_transactions
		WHERE voucher_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, voucherID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for voucher "+voucherID, err)
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
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for voucher "+voucherID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for voucher "+voucherID, err)
	}

	return mapping.ToDomainLedgerLineSlice(lines), nil
}

// ListVouchers retrieves a paginated list of voucher headers using token-based
// pagination. It returns the vouchers, a token for the next page, and an error.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + voucherColumns + ` FROM gl_headers`
	// Ordering must be stable: voucher_date DESC with created_at DESC as tie-break.
	orderByClause := `ORDER BY voucher_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastVoucherDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `WHERE (voucher_date, created_at) < ($1, $2)`
		args = append(args, lastVoucherDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query vouchers", err)
	}
	defer rows.Close()

	vouchers := make([]models.Voucher, 0, fetchLimit)
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan voucher row", err)
		}
		vouchers = append(vouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating voucher rows", err)
	}

	var nextTokenVal *string
	if len(vouchers) > limit {
		last := vouchers[limit-1]
		token := pagination.EncodeToken(last.VoucherDate, last.CreatedAt)
		nextTokenVal = &token
		vouchers = vouchers[:limit]
	}

	results := make([]domain.Voucher, len(vouchers))
	for i, m := range vouchers {
		results[i] = mapping.ToDomainVoucher(m)
	}
	return results, nextTokenVal, nil
}

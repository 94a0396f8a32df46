package repositories

import (
	"context"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
)

// VoucherRepositoryFacade defines persistence operations for vouchers and
// their ledger lines. SaveVoucher and ReplaceVoucherLines must each execute
// as one database transaction; no partial header/line state may be
// observable to readers.
type VoucherRepositoryFacade interface {
	// SaveVoucher claims the next voucher number, inserts the header and all
	// lines atomically, and returns the assigned voucher number.
	SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.LedgerLine) (int64, error)

	// ReplaceVoucherLines updates the header scalar fields, deletes every
	// existing line and inserts the freshly built set, atomically. The header
	// row is locked for the duration to serialize concurrent edits.
	ReplaceVoucherLines(ctx context.Context, voucher domain.Voucher, lines []domain.LedgerLine) error

	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.LedgerLine, error)

	// ListVouchers returns a page of vouchers ordered by voucher date
	// descending, with a cursor token for the next page.
	ListVouchers(ctx context.Context, limit int, nextToken *string) ([]domain.Voucher, *string, error)
}

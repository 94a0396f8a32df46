package services

import (
	"context"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/dto"
)

// VoucherSvcFacade is the ledger posting engine: it turns validated business
// inputs into balanced voucher+line sets and persists them atomically.
type VoucherSvcFacade interface {
	// Post builds and persists a new voucher for the requested kind.
	Post(ctx context.Context, req dto.PostVoucherRequest, creatorUserID string) (*domain.Voucher, error)

	// ReplaceLines updates the header scalars and replaces the full line set
	// with a freshly built one, computed exactly as Post would. The voucher's
	// status is never changed by an edit.
	ReplaceLines(ctx context.Context, voucherID string, req dto.PostVoucherRequest, userID string) (*domain.Voucher, error)

	// ReverseVoucher creates a new counter-posting that mirrors the original
	// voucher's lines with sides swapped. The original is never mutated.
	ReverseVoucher(ctx context.Context, voucherID string, userID string) (*domain.Voucher, error)

	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)
}

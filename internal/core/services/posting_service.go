package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/apperrors"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	portsrepo "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/repositories"
	portssvc "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/services"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/dto"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/middleware"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/utils/accounting"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountInactive   = errors.New("account is inactive")
	ErrKindNotRegistered = errors.New("transaction kind is not registered")
	ErrKindChanged       = errors.New("voucher kind cannot change on edit")
)

// voucherService is the ledger posting engine.
type voucherService struct {
	cfg          domain.PostingConfig
	voucherRepo  portsrepo.VoucherRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewVoucherService creates a new VoucherService. The posting configuration
// (commission account, base currency, registered kinds) is resolved once at
// startup and injected here.
func NewVoucherService(
	cfg domain.PostingConfig,
	voucherRepo portsrepo.VoucherRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
) portssvc.VoucherSvcFacade {
	return &voucherService{
		cfg:          cfg,
		voucherRepo:  voucherRepo,
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure voucherService implements the portssvc.VoucherSvcFacade interface
var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// Post validates the inputs, builds a balanced line set for the kind and
// persists header+lines as one atomic unit.
func (s *voucherService) Post(ctx context.Context, req dto.PostVoucherRequest, creatorUserID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	voucherID := uuid.NewString()
	now := time.Now().UTC()

	lines, err := s.buildLines(ctx, req, voucherID, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	status := domain.Posted
	if req.Kind == domain.KindManualJournal && req.Status == domain.Draft {
		status = domain.Draft
	}

	voucher := domain.Voucher{
		VoucherID:   voucherID,
		VoucherDate: req.Date,
		Description: req.Description,
		Kind:        req.Kind,
		Status:      status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	number, err := s.voucherRepo.SaveVoucher(ctx, voucher, lines)
	if err != nil {
		logger.Error("Failed to save voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}
	voucher.VoucherNumber = number

	logger.Info("Voucher posted successfully",
		slog.String("voucher_id", voucher.VoucherID),
		slog.Int64("voucher_number", voucher.VoucherNumber),
		slog.String("kind", string(voucher.Kind)))
	// Return the header without lines populated; callers fetch lines separately.
	return &voucher, nil
}

// ReplaceLines updates the header scalar fields and swaps the full line set
// for a freshly computed one, exactly as Post would build it. The operation
// is a single store transaction; the voucher's status and number never
// change on edit.
func (s *voucherService) ReplaceLines(ctx context.Context, voucherID string, req dto.PostVoucherRequest, userID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find voucher for edit", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	if req.Kind != existing.Kind {
		return nil, fmt.Errorf("%w: voucher is %s", ErrKindChanged, existing.Kind)
	}

	now := time.Now().UTC()
	lines, err := s.buildLines(ctx, req, voucherID, userID, now)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.VoucherDate = req.Date
	updated.Description = req.Description
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	if err := s.voucherRepo.ReplaceVoucherLines(ctx, updated, lines); err != nil {
		logger.Error("Failed to replace voucher lines", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to replace voucher lines: %w", err)
	}

	logger.Info("Voucher lines replaced successfully",
		slog.String("voucher_id", voucherID),
		slog.Int("line_count", len(lines)))
	return &updated, nil
}

// ReverseVoucher creates a new counter-posting mirroring the original's
// lines with debit and credit sides swapped. The original voucher is never
// mutated.
func (s *voucherService) ReverseVoucher(ctx context.Context, voucherID string, userID string) (*domain.Voucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	originalLines, err := s.voucherRepo.FindLinesByVoucherID(ctx, voucherID)
	if err != nil {
		logger.Error("Failed to fetch lines for reversal", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to retrieve lines for voucher %s: %w", voucherID, err)
	}

	now := time.Now().UTC()
	reversingID := uuid.NewString()
	reversingLines := make([]domain.LedgerLine, len(originalLines))
	for i, orig := range originalLines {
		reversingLines[i] = domain.LedgerLine{
			LineID:       uuid.NewString(),
			VoucherID:    reversingID,
			LineNumber:   orig.LineNumber,
			AccountID:    orig.AccountID,
			CurrencyID:   orig.CurrencyID,
			Debit:        orig.Credit,
			Credit:       orig.Debit,
			DebitDoc:     orig.CreditDoc,
			CreditDoc:    orig.DebitDoc,
			ExchangeRate: orig.ExchangeRate,
			PurchaseRate: orig.PurchaseRate,
			SalesRate:    orig.SalesRate,
			Role:         orig.Role,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	reversing := domain.Voucher{
		VoucherID:   reversingID,
		VoucherDate: original.VoucherDate,
		Description: fmt.Sprintf("Reversal of Voucher #%d: %s", original.VoucherNumber, original.Description),
		Kind:        original.Kind,
		Status:      domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	number, err := s.voucherRepo.SaveVoucher(ctx, reversing, reversingLines)
	if err != nil {
		logger.Error("Failed to save reversing voucher", slog.String("error", err.Error()), slog.String("original_voucher_id", voucherID))
		return nil, fmt.Errorf("failed to save reversing voucher: %w", err)
	}
	reversing.VoucherNumber = number

	logger.Info("Voucher reversed successfully",
		slog.String("original_voucher_id", voucherID),
		slog.String("reversing_voucher_id", reversingID))
	return &reversing, nil
}

// GetVoucherByID retrieves a voucher with its lines populated.
func (s *voucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	lines, err := s.voucherRepo.FindLinesByVoucherID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for voucher %s: %w", voucherID, err)
	}
	for i := range lines {
		lines[i].VoucherDate = voucher.VoucherDate
	}
	voucher.Lines = lines
	return voucher, nil
}

// ListVouchers retrieves a paginated list of vouchers.
func (s *voucherService) ListVouchers(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	vouchers, nextToken, err := s.voucherRepo.ListVouchers(ctx, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list vouchers from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve vouchers: %w", err)
	}

	responses := make([]dto.VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = dto.ToVoucherResponse(&vouchers[i])
	}

	logger.Info("Vouchers listed successfully", slog.Int("count", len(vouchers)))
	return &dto.ListVouchersResponse{Vouchers: responses, NextToken: nextToken}, nil
}

// buildLines resolves master data, runs the kind's line builder and verifies
// the double-entry invariant. Nothing is persisted here; any error aborts
// the operation before a write.
func (s *voucherService) buildLines(ctx context.Context, req dto.PostVoucherRequest, voucherID, userID string, now time.Time) ([]domain.LedgerLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	builder, ok := lineBuilders[req.Kind]
	if !ok || !s.cfg.KindRegistered(req.Kind) {
		return nil, fmt.Errorf("%w: %s", ErrKindNotRegistered, req.Kind)
	}

	accountIDs := collectAccountIDs(req, s.cfg)
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to fetch accounts for posting", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrAccountInactive, id)
		}
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		logger.Error("Failed to fetch currencies for posting", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch currencies: %w", err)
	}
	currencyMap := make(map[string]domain.Currency, len(currencies))
	for _, c := range currencies {
		currencyMap[c.CurrencyID] = c
	}

	bc := &buildContext{
		cfg:        s.cfg,
		accounts:   accountsMap,
		currencies: currencyMap,
		voucherID:  voucherID,
		userID:     userID,
		now:        now,
	}

	lines, err := builder(req, bc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	if err := accounting.ValidateBalanced(lines); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	// Line numbers fix the display order; timestamps within a voucher are
	// all identical so they cannot order lines.
	for i := range lines {
		lines[i].LineNumber = i + 1
	}
	return lines, nil
}

// collectAccountIDs gathers every account the request references, including
// the commission account for the kinds that may book one.
func collectAccountIDs(req dto.PostVoucherRequest, cfg domain.PostingConfig) []string {
	ids := make([]string, 0, 4+len(req.Lines))
	switch req.Kind {
	case domain.KindCashEntry:
		ids = append(ids, req.CashbookAccountID, req.PartnerAccountID)
	case domain.KindManualJournal:
		for _, l := range req.Lines {
			ids = append(ids, l.AccountID)
		}
	default:
		ids = append(ids, req.FromAccountID, req.ToAccountID, cfg.CommissionAccountID)
	}
	return uniqueStrings(ids)
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if str == "" {
			continue
		}
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}

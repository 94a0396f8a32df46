package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sikandargaba/AA-Hisab-sub000/internal/apperrors"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/domain"
	portsrepo "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/repositories"
	portssvc "github.com/sikandargaba/AA-Hisab-sub000/internal/core/ports/services"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/core/services"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/dto"
	"github.com/sikandargaba/AA-Hisab-sub000/internal/utils/accounting"
)

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryFacade = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.LedgerLine) (int64, error) {
	args := m.Called(ctx, voucher, lines)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVoucherRepository) ReplaceVoucherLines(ctx context.Context, voucher domain.Voucher, lines []domain.LedgerLine) error {
	args := m.Called(ctx, voucher, lines)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindLinesByVoucherID(ctx context.Context, voucherID string) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Voucher), returnedNextToken, args.Error(2)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite Setup ---
type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo  *MockVoucherRepository
	mockAccountRepo  *MockAccountRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.VoucherSvcFacade

	basePKR           domain.Currency
	usd               domain.Currency
	commissionAccount domain.Account
	cashbookUSD       domain.Account
	partyA            domain.Account
	partyB            domain.Account
	userID            string
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)

	suite.basePKR = domain.Currency{
		CurrencyID:   uuid.NewString(),
		CurrencyCode: "PKR",
		Rate:         decimal.NewFromInt(1),
		IsBase:       true,
	}
	suite.usd = domain.Currency{
		CurrencyID:   uuid.NewString(),
		CurrencyCode: "USD",
		Rate:         decimal.NewFromInt(280),
		RateNote:     domain.RateMultiply,
	}

	suite.commissionAccount = domain.Account{
		AccountID: uuid.NewString(),
		Code:      "COMMISSION",
		Name:      "Commission Income",
		IsActive:  true,
	}
	usdID := suite.usd.CurrencyID
	suite.cashbookUSD = domain.Account{
		AccountID:  uuid.NewString(),
		Code:       "CASH-USD",
		Name:       "USD Cash Book",
		IsCashbook: true,
		CurrencyID: &usdID,
		IsActive:   true,
	}
	suite.partyA = domain.Account{
		AccountID: uuid.NewString(),
		Code:      "PARTY-A",
		Name:      "Party A",
		IsActive:  true,
	}
	suite.partyB = domain.Account{
		AccountID: uuid.NewString(),
		Code:      "PARTY-B",
		Name:      "Party B",
		IsActive:  true,
	}
	suite.userID = uuid.NewString()

	cfg := domain.PostingConfig{
		CommissionAccountID: suite.commissionAccount.AccountID,
		BaseCurrency:        suite.basePKR,
		TypeCodes: map[domain.TransactionKind]int{
			domain.KindCashEntry:          1,
			domain.KindInterpartyTransfer: 2,
			domain.KindBankTransfer:       3,
			domain.KindManagerCheque:      4,
			domain.KindGeneralTrading:     5,
			domain.KindManualJournal:      6,
		},
	}

	suite.service = services.NewVoucherService(cfg, suite.mockVoucherRepo, suite.mockAccountRepo, suite.mockCurrencyRepo)
}

func (suite *VoucherServiceTestSuite) expectMasterData(accounts ...domain.Account) {
	accountsMap := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		accountsMap[a.AccountID] = a
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(accountsMap, nil).Once()
	suite.mockCurrencyRepo.On("ListCurrencies", mock.Anything).Return([]domain.Currency{suite.basePKR, suite.usd}, nil).Once()
}

func (suite *VoucherServiceTestSuite) captureSave(number int64) *[]domain.LedgerLine {
	var captured []domain.LedgerLine
	suite.mockVoucherRepo.On("SaveVoucher", mock.Anything, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.LedgerLine")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).([]domain.LedgerLine)
		}).
		Return(number, nil).Once()
	return &captured
}

func linesByAccount(lines []domain.LedgerLine) map[string]domain.LedgerLine {
	byAccount := make(map[string]domain.LedgerLine, len(lines))
	for _, l := range lines {
		byAccount[l.AccountID] = l
	}
	return byAccount
}

// --- Test Cases ---

func (suite *VoucherServiceTestSuite) TestPost_CashEntryReceipt() {
	ctx := context.Background()
	suite.expectMasterData(suite.cashbookUSD, suite.partyA)
	captured := suite.captureSave(7)

	req := dto.PostVoucherRequest{
		Kind:              domain.KindCashEntry,
		Date:              time.Now().UTC(),
		Description:       "USD cash received",
		CashbookAccountID: suite.cashbookUSD.AccountID,
		PartnerAccountID:  suite.partyA.AccountID,
		IsReceipt:         true,
		Amount:            decimal.NewFromInt(100),
	}

	voucher, err := suite.service.Post(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(voucher)
	suite.Equal(int64(7), voucher.VoucherNumber)
	suite.Equal(domain.Posted, voucher.Status)
	suite.Nil(voucher.Lines)

	suite.Require().Len(*captured, 2)
	byAccount := linesByAccount(*captured)

	// Cashbook debited 100 USD = 28,000 base at rate 280 MULTIPLY
	cashLine := byAccount[suite.cashbookUSD.AccountID]
	suite.True(decimal.NewFromInt(28000).Equal(cashLine.Debit))
	suite.True(decimal.NewFromInt(100).Equal(cashLine.DebitDoc))
	suite.Equal(suite.usd.CurrencyID, cashLine.CurrencyID)
	suite.Equal(domain.RolePrincipal, cashLine.Role)

	// Partner credited the base equivalent in base currency
	partnerLine := byAccount[suite.partyA.AccountID]
	suite.True(decimal.NewFromInt(28000).Equal(partnerLine.Credit))
	suite.Equal(suite.basePKR.CurrencyID, partnerLine.CurrencyID)

	suite.mockVoucherRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestPost_BankTransfer() {
	ctx := context.Background()
	suite.expectMasterData(suite.partyA, suite.partyB, suite.commissionAccount)
	captured := suite.captureSave(8)

	req := dto.PostVoucherRequest{
		Kind:          domain.KindBankTransfer,
		Date:          time.Now().UTC(),
		Description:   "Bank transfer with spread",
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   suite.partyB.AccountID,
		Amount:        decimal.NewFromInt(100000),
		SellingRate:   decimal.NewFromInt(50),
		PurchaseRate:  decimal.NewFromInt(40),
	}

	_, err := suite.service.Post(ctx, req, suite.userID)
	suite.Require().NoError(err)

	suite.Require().Len(*captured, 3)
	byAccount := linesByAccount(*captured)

	customer := byAccount[suite.partyB.AccountID]
	suite.True(decimal.NewFromInt(100050).Equal(customer.Debit))
	suite.Require().NotNil(customer.SalesRate)
	suite.True(decimal.NewFromInt(50).Equal(*customer.SalesRate))

	supplier := byAccount[suite.partyA.AccountID]
	suite.True(decimal.NewFromInt(100040).Equal(supplier.Credit))

	commission := byAccount[suite.commissionAccount.AccountID]
	suite.True(decimal.NewFromInt(10).Equal(commission.Credit))
	suite.Equal(domain.RoleCommission, commission.Role)

	suite.NoError(accounting.ValidateBalanced(*captured))
}

func (suite *VoucherServiceTestSuite) TestPost_LineNumbersFollowBuildOrder() {
	ctx := context.Background()
	suite.expectMasterData(suite.partyA, suite.partyB, suite.commissionAccount)
	captured := suite.captureSave(13)

	req := dto.PostVoucherRequest{
		Kind:          domain.KindBankTransfer,
		Date:          time.Now().UTC(),
		Description:   "Ordered lines",
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   suite.partyB.AccountID,
		Amount:        decimal.NewFromInt(100000),
		SellingRate:   decimal.NewFromInt(50),
		PurchaseRate:  decimal.NewFromInt(40),
	}

	_, err := suite.service.Post(ctx, req, suite.userID)
	suite.Require().NoError(err)

	// All lines of a voucher share one creation timestamp, so the line
	// number is the only thing that fixes their order.
	suite.Require().Len(*captured, 3)
	for i, line := range *captured {
		suite.Equal(i+1, line.LineNumber)
		suite.True((*captured)[0].CreatedAt.Equal(line.CreatedAt))
	}
	suite.Equal(domain.RoleCommission, (*captured)[2].Role)
}

func (suite *VoucherServiceTestSuite) TestPost_TradingNegativeSpread() {
	ctx := context.Background()
	suite.expectMasterData(suite.partyA, suite.partyB, suite.commissionAccount)
	captured := suite.captureSave(9)

	req := dto.PostVoucherRequest{
		Kind:          domain.KindGeneralTrading,
		Date:          time.Now().UTC(),
		Description:   "Sold below purchase",
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   suite.partyB.AccountID,
		Amount:        decimal.NewFromInt(100),
		SellingRate:   decimal.NewFromInt(35),
		PurchaseRate:  decimal.NewFromInt(36),
	}

	_, err := suite.service.Post(ctx, req, suite.userID)
	suite.Require().NoError(err)

	// Dealing loss books on the debit side of the commission account
	byAccount := linesByAccount(*captured)
	commission := byAccount[suite.commissionAccount.AccountID]
	suite.True(decimal.NewFromInt(100).Equal(commission.Debit))
	suite.True(commission.Credit.IsZero())
	suite.Equal(domain.RoleCommission, commission.Role)

	suite.NoError(accounting.ValidateBalanced(*captured))
}

func (suite *VoucherServiceTestSuite) TestPost_InterpartyZeroCommissionTwoLines() {
	ctx := context.Background()
	suite.expectMasterData(suite.partyA, suite.partyB, suite.commissionAccount)
	captured := suite.captureSave(10)

	req := dto.PostVoucherRequest{
		Kind:          domain.KindInterpartyTransfer,
		Date:          time.Now().UTC(),
		Description:   "Plain transfer",
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   suite.partyB.AccountID,
		Amount:        decimal.NewFromInt(500),
	}

	_, err := suite.service.Post(ctx, req, suite.userID)
	suite.Require().NoError(err)

	// No commission line when the fee is zero
	suite.Len(*captured, 2)
}

func (suite *VoucherServiceTestSuite) TestPost_SameParty() {
	ctx := context.Background()
	suite.expectMasterData(suite.partyA, suite.commissionAccount)

	req := dto.PostVoucherRequest{
		Kind:          domain.KindInterpartyTransfer,
		Date:          time.Now().UTC(),
		Description:   "Self transfer",
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   suite.partyA.AccountID,
		Amount:        decimal.NewFromInt(500),
	}

	_, err := suite.service.Post(ctx, req, suite.userID)

	suite.ErrorIs(err, services.ErrSameParty)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestPost_UnbalancedManualJournal() {
	ctx := context.Background()
	suite.expectMasterData(suite.partyA, suite.partyB)

	req := dto.PostVoucherRequest{
		Kind:        domain.KindManualJournal,
		Date:        time.Now().UTC(),
		Description: "Does not balance",
		Lines: []dto.ManualLineRequest{
			{AccountID: suite.partyA.AccountID, Debit: decimal.NewFromInt(40)},
			{AccountID: suite.partyB.AccountID, Credit: decimal.NewFromInt(30)},
		},
	}

	_, err := suite.service.Post(ctx, req, suite.userID)

	suite.ErrorIs(err, accounting.ErrUnbalanced)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestPost_UnregisteredKind() {
	ctx := context.Background()

	cfg := domain.PostingConfig{
		CommissionAccountID: suite.commissionAccount.AccountID,
		BaseCurrency:        suite.basePKR,
		TypeCodes: map[domain.TransactionKind]int{
			domain.KindManualJournal: 6,
		},
	}
	svc := services.NewVoucherService(cfg, suite.mockVoucherRepo, suite.mockAccountRepo, suite.mockCurrencyRepo)

	req := dto.PostVoucherRequest{
		Kind:          domain.KindBankTransfer,
		Date:          time.Now().UTC(),
		Description:   "Unregistered kind",
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   suite.partyB.AccountID,
		Amount:        decimal.NewFromInt(100000),
		SellingRate:   decimal.NewFromInt(50),
		PurchaseRate:  decimal.NewFromInt(40),
	}

	_, err := svc.Post(ctx, req, suite.userID)

	suite.ErrorIs(err, services.ErrKindNotRegistered)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestPost_InactiveAccount() {
	ctx := context.Background()
	inactive := suite.partyB
	inactive.IsActive = false
	suite.expectMasterData(suite.partyA, inactive, suite.commissionAccount)

	req := dto.PostVoucherRequest{
		Kind:          domain.KindInterpartyTransfer,
		Date:          time.Now().UTC(),
		Description:   "To inactive party",
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   inactive.AccountID,
		Amount:        decimal.NewFromInt(100),
	}

	_, err := suite.service.Post(ctx, req, suite.userID)

	suite.ErrorIs(err, services.ErrAccountInactive)
}

func (suite *VoucherServiceTestSuite) TestPost_MissingAccount() {
	ctx := context.Background()
	// partyB is referenced but not returned by the repository
	suite.expectMasterData(suite.partyA, suite.commissionAccount)

	req := dto.PostVoucherRequest{
		Kind:          domain.KindInterpartyTransfer,
		Date:          time.Now().UTC(),
		Description:   "To unknown party",
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   suite.partyB.AccountID,
		Amount:        decimal.NewFromInt(100),
	}

	_, err := suite.service.Post(ctx, req, suite.userID)

	suite.ErrorIs(err, services.ErrAccountNotFound)
}

func (suite *VoucherServiceTestSuite) TestPost_ManualJournalDraft() {
	ctx := context.Background()
	suite.expectMasterData(suite.partyA, suite.partyB)
	captured := suite.captureSave(11)

	req := dto.PostVoucherRequest{
		Kind:        domain.KindManualJournal,
		Date:        time.Now().UTC(),
		Description: "Adjusting entry",
		Status:      domain.Draft,
		Lines: []dto.ManualLineRequest{
			{AccountID: suite.partyA.AccountID, Debit: decimal.NewFromInt(40)},
			{AccountID: suite.partyB.AccountID, Credit: decimal.NewFromInt(40)},
		},
	}

	voucher, err := suite.service.Post(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Draft, voucher.Status)
	suite.Len(*captured, 2)
}

func (suite *VoucherServiceTestSuite) TestPost_DraftIgnoredForNonManualKinds() {
	ctx := context.Background()
	suite.expectMasterData(suite.partyA, suite.partyB, suite.commissionAccount)
	suite.captureSave(12)

	req := dto.PostVoucherRequest{
		Kind:          domain.KindInterpartyTransfer,
		Date:          time.Now().UTC(),
		Description:   "Draft requested but not allowed",
		Status:        domain.Draft,
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   suite.partyB.AccountID,
		Amount:        decimal.NewFromInt(100),
	}

	voucher, err := suite.service.Post(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, voucher.Status)
}

func (suite *VoucherServiceTestSuite) TestReplaceLines_Success() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID:     voucherID,
		VoucherNumber: 42,
		VoucherDate:   time.Now().UTC().AddDate(0, 0, -1),
		Description:   "Original",
		Kind:          domain.KindBankTransfer,
		Status:        domain.Posted,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", mock.Anything, voucherID).Return(existing, nil).Once()
	suite.expectMasterData(suite.partyA, suite.partyB, suite.commissionAccount)

	var replacedVoucher domain.Voucher
	var replacedLines []domain.LedgerLine
	suite.mockVoucherRepo.On("ReplaceVoucherLines", mock.Anything, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.LedgerLine")).
		Run(func(args mock.Arguments) {
			replacedVoucher = args.Get(1).(domain.Voucher)
			replacedLines = args.Get(2).([]domain.LedgerLine)
		}).
		Return(nil).Once()

	req := dto.PostVoucherRequest{
		Kind:          domain.KindBankTransfer,
		Date:          time.Now().UTC(),
		Description:   "Corrected",
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   suite.partyB.AccountID,
		Amount:        decimal.NewFromInt(200000),
		SellingRate:   decimal.NewFromInt(30),
		PurchaseRate:  decimal.NewFromInt(24),
	}

	updated, err := suite.service.ReplaceLines(ctx, voucherID, req, suite.userID)

	suite.Require().NoError(err)
	// Edit never changes the number or the status
	suite.Equal(int64(42), updated.VoucherNumber)
	suite.Equal(domain.Posted, updated.Status)
	suite.Equal("Corrected", updated.Description)
	suite.Equal("Corrected", replacedVoucher.Description)
	suite.Require().Len(replacedLines, 3)
	suite.NoError(accounting.ValidateBalanced(replacedLines))

	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestReplaceLines_RepeatedEditSameAmounts() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID:     voucherID,
		VoucherNumber: 42,
		VoucherDate:   time.Now().UTC().AddDate(0, 0, -1),
		Description:   "Original",
		Kind:          domain.KindBankTransfer,
		Status:        domain.Posted,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", mock.Anything, voucherID).Return(existing, nil).Twice()
	suite.expectMasterData(suite.partyA, suite.partyB, suite.commissionAccount)
	suite.expectMasterData(suite.partyA, suite.partyB, suite.commissionAccount)

	var lineSets [][]domain.LedgerLine
	suite.mockVoucherRepo.On("ReplaceVoucherLines", mock.Anything, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.LedgerLine")).
		Run(func(args mock.Arguments) {
			lineSets = append(lineSets, args.Get(2).([]domain.LedgerLine))
		}).
		Return(nil).Twice()

	req := dto.PostVoucherRequest{
		Kind:          domain.KindBankTransfer,
		Date:          time.Now().UTC(),
		Description:   "Corrected",
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   suite.partyB.AccountID,
		Amount:        decimal.NewFromInt(100000),
		SellingRate:   decimal.NewFromInt(50),
		PurchaseRate:  decimal.NewFromInt(40),
	}

	_, err := suite.service.ReplaceLines(ctx, voucherID, req, suite.userID)
	suite.Require().NoError(err)
	_, err = suite.service.ReplaceLines(ctx, voucherID, req, suite.userID)
	suite.Require().NoError(err)

	// Editing with unchanged inputs regenerates the lines but never the
	// amounts; only the line IDs differ between the two passes.
	suite.Require().Len(lineSets, 2)
	first := linesByAccount(lineSets[0])
	second := linesByAccount(lineSets[1])
	suite.Require().Len(second, len(first))
	for accountID, a := range first {
		b, ok := second[accountID]
		suite.Require().True(ok)
		suite.True(a.Debit.Equal(b.Debit))
		suite.True(a.Credit.Equal(b.Credit))
		suite.True(a.DebitDoc.Equal(b.DebitDoc))
		suite.True(a.CreditDoc.Equal(b.CreditDoc))
		suite.Equal(a.LineNumber, b.LineNumber)
		suite.Equal(a.Role, b.Role)
		suite.NotEqual(a.LineID, b.LineID)
	}

	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestReplaceLines_KindChanged() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID: voucherID,
		Kind:      domain.KindCashEntry,
		Status:    domain.Posted,
	}
	suite.mockVoucherRepo.On("FindVoucherByID", mock.Anything, voucherID).Return(existing, nil).Once()

	req := dto.PostVoucherRequest{
		Kind:          domain.KindBankTransfer,
		Date:          time.Now().UTC(),
		Description:   "Changing kind",
		FromAccountID: suite.partyA.AccountID,
		ToAccountID:   suite.partyB.AccountID,
		Amount:        decimal.NewFromInt(100000),
		SellingRate:   decimal.NewFromInt(50),
		PurchaseRate:  decimal.NewFromInt(40),
	}

	_, err := suite.service.ReplaceLines(ctx, voucherID, req, suite.userID)

	suite.ErrorIs(err, services.ErrKindChanged)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "ReplaceVoucherLines", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestReverseVoucher() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	original := &domain.Voucher{
		VoucherID:     voucherID,
		VoucherNumber: 5,
		VoucherDate:   time.Now().UTC(),
		Description:   "To be reversed",
		Kind:          domain.KindInterpartyTransfer,
		Status:        domain.Posted,
	}
	originalLines := []domain.LedgerLine{
		{
			LineID:       uuid.NewString(),
			VoucherID:    voucherID,
			LineNumber:   1,
			AccountID:    suite.partyB.AccountID,
			CurrencyID:   suite.basePKR.CurrencyID,
			Debit:        decimal.NewFromInt(205),
			DebitDoc:     decimal.NewFromInt(205),
			ExchangeRate: decimal.NewFromInt(1),
			Role:         domain.RolePrincipal,
		},
		{
			LineID:       uuid.NewString(),
			VoucherID:    voucherID,
			LineNumber:   2,
			AccountID:    suite.partyA.AccountID,
			CurrencyID:   suite.basePKR.CurrencyID,
			Credit:       decimal.NewFromInt(195),
			CreditDoc:    decimal.NewFromInt(195),
			ExchangeRate: decimal.NewFromInt(1),
			Role:         domain.RolePrincipal,
		},
		{
			LineID:       uuid.NewString(),
			VoucherID:    voucherID,
			LineNumber:   3,
			AccountID:    suite.commissionAccount.AccountID,
			CurrencyID:   suite.basePKR.CurrencyID,
			Credit:       decimal.NewFromInt(10),
			CreditDoc:    decimal.NewFromInt(10),
			ExchangeRate: decimal.NewFromInt(1),
			Role:         domain.RoleCommission,
		},
	}

	suite.mockVoucherRepo.On("FindVoucherByID", mock.Anything, voucherID).Return(original, nil).Once()
	suite.mockVoucherRepo.On("FindLinesByVoucherID", mock.Anything, voucherID).Return(originalLines, nil).Once()
	captured := suite.captureSave(6)

	reversing, err := suite.service.ReverseVoucher(ctx, voucherID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(6), reversing.VoucherNumber)
	suite.NotEqual(voucherID, reversing.VoucherID)
	suite.Contains(reversing.Description, "Reversal of Voucher #5")
	suite.Equal(domain.Posted, reversing.Status)

	suite.Require().Len(*captured, 3)
	byAccount := linesByAccount(*captured)

	// Every line mirrored: debits became credits and vice versa
	suite.True(decimal.NewFromInt(205).Equal(byAccount[suite.partyB.AccountID].Credit))
	suite.True(decimal.NewFromInt(195).Equal(byAccount[suite.partyA.AccountID].Debit))
	suite.True(decimal.NewFromInt(10).Equal(byAccount[suite.commissionAccount.AccountID].Debit))
	suite.Equal(domain.RoleCommission, byAccount[suite.commissionAccount.AccountID].Role)
	// Mirrored lines keep the original's line numbers
	for i, line := range *captured {
		suite.Equal(originalLines[i].LineNumber, line.LineNumber)
	}
	suite.NoError(accounting.ValidateBalanced(*captured))
}

func (suite *VoucherServiceTestSuite) TestGetVoucherByID() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	header := &domain.Voucher{
		VoucherID:   voucherID,
		VoucherDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Kind:        domain.KindCashEntry,
		Status:      domain.Posted,
	}
	lines := []domain.LedgerLine{
		{LineID: uuid.NewString(), VoucherID: voucherID, Debit: decimal.NewFromInt(100)},
		{LineID: uuid.NewString(), VoucherID: voucherID, Credit: decimal.NewFromInt(100)},
	}

	suite.mockVoucherRepo.On("FindVoucherByID", mock.Anything, voucherID).Return(header, nil).Once()
	suite.mockVoucherRepo.On("FindLinesByVoucherID", mock.Anything, voucherID).Return(lines, nil).Once()

	voucher, err := suite.service.GetVoucherByID(ctx, voucherID)

	suite.Require().NoError(err)
	suite.Require().Len(voucher.Lines, 2)
	suite.True(header.VoucherDate.Equal(voucher.Lines[0].VoucherDate))
}

func (suite *VoucherServiceTestSuite) TestListVouchers() {
	ctx := context.Background()
	vouchers := []domain.Voucher{
		{VoucherID: uuid.NewString(), VoucherNumber: 2, Kind: domain.KindCashEntry, Status: domain.Posted},
		{VoucherID: uuid.NewString(), VoucherNumber: 1, Kind: domain.KindManualJournal, Status: domain.Draft},
	}
	suite.mockVoucherRepo.On("ListVouchers", mock.Anything, 2, (*string)(nil)).Return(vouchers, "next-page-token", nil).Once()

	resp, err := suite.service.ListVouchers(ctx, dto.ListVouchersParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Vouchers, 2)
	suite.Equal(int64(2), resp.Vouchers[0].VoucherNumber)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next-page-token", *resp.NextToken)
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}

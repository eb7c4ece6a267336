package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voucherledger/voucher_ledger_app/internal/apperrors"
	"github.com/voucherledger/voucher_ledger_app/internal/core/domain"
	portssvc "github.com/voucherledger/voucher_ledger_app/internal/core/ports/services"
	"github.com/voucherledger/voucher_ledger_app/internal/core/services"
	"github.com/voucherledger/voucher_ledger_app/internal/dto"
)

// MockVoucherRepository is a mock type for the VoucherRepositoryFacade interface
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) CreateDraftVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.Entry) error {
	args := m.Called(ctx, voucher, entries)
	return args.Error(0)
}

func (m *MockVoucherRepository) ReplaceDraftVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.Entry) error {
	args := m.Called(ctx, voucher, entries)
	return args.Error(0)
}

func (m *MockVoucherRepository) DeleteDraftVoucher(ctx context.Context, voucherID string) error {
	args := m.Called(ctx, voucherID)
	return args.Error(0)
}

func (m *MockVoucherRepository) PostVoucher(ctx context.Context, voucherID string) (*domain.PostingResult, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindEntriesByVoucherID(ctx context.Context, voucherID string) ([]domain.Entry, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockVoucherRepository) ListDraftVouchersByCompany(ctx context.Context, companyID string, limit int) ([]domain.Voucher, error) {
	args := m.Called(ctx, companyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Voucher), args.Error(1)
}

// MockVoucherTypeRepository is a mock type for the VoucherTypeRepositoryFacade interface
type MockVoucherTypeRepository struct {
	mock.Mock
}

func (m *MockVoucherTypeRepository) FindVoucherTypeByCode(ctx context.Context, companyID string, code domain.VoucherTypeCode) (*domain.VoucherType, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherType), args.Error(1)
}

func (m *MockVoucherTypeRepository) FindVoucherTypeByID(ctx context.Context, voucherTypeID string) (*domain.VoucherType, error) {
	args := m.Called(ctx, voucherTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VoucherType), args.Error(1)
}

// MockAccountService is a mock type for the AccountSvcFacade interface
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) FindAccountByRole(ctx context.Context, companyID string, role domain.AccountRole) (*domain.Account, error) {
	args := m.Called(ctx, companyID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Test Suite Setup ---

type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockTypeRepo    *MockVoucherTypeRepository
	mockAccountSvc  *MockAccountService
	service         portssvc.VoucherSvcFacade

	companyID     string
	voucherTypeID string
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockTypeRepo = new(MockVoucherTypeRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewVoucherService(suite.mockVoucherRepo, suite.mockTypeRepo, suite.mockAccountSvc)
	suite.companyID = uuid.NewString()
	suite.voucherTypeID = uuid.NewString()
}

func (suite *VoucherServiceTestSuite) draftInput() dto.DraftVoucherInput {
	return dto.DraftVoucherInput{
		VoucherType:      domain.Sale,
		SubType:          domain.CashSale,
		Amount:           decimal.NewFromInt(1000),
		VoucherDate:      time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Narration:        "Counter sale",
		PaymentAccountID: "acc-cash",
		Accounts: domain.ControlAccounts{
			SalesAccountID: "acc-sales",
		},
	}
}

func (suite *VoucherServiceTestSuite) saleVoucherType() *domain.VoucherType {
	return &domain.VoucherType{
		VoucherTypeID: suite.voucherTypeID,
		CompanyID:     suite.companyID,
		Code:          domain.Sale,
		Name:          "Sale",
	}
}

func (suite *VoucherServiceTestSuite) knownAccounts(ids ...string) map[string]domain.Account {
	accounts := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		accounts[id] = domain.Account{AccountID: id, CompanyID: suite.companyID}
	}
	return accounts
}

// --- CreateDraft ---

func (suite *VoucherServiceTestSuite) TestCreateDraft_Success() {
	ctx := context.Background()
	input := suite.draftInput()

	suite.mockTypeRepo.On("FindVoucherTypeByCode", ctx, suite.companyID, domain.Sale).Return(suite.saleVoucherType(), nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).
		Return(suite.knownAccounts("acc-cash", "acc-sales"), nil).Once()
	suite.mockVoucherRepo.On("CreateDraftVoucher", ctx, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.Entry")).
		Return(nil).Once()

	voucher, err := suite.service.CreateDraft(ctx, suite.companyID, input)

	suite.Require().NoError(err)
	suite.Require().NotNil(voucher)
	suite.NotEmpty(voucher.VoucherID)
	suite.Equal(domain.Draft, voucher.Status)
	suite.Equal(suite.voucherTypeID, voucher.VoucherTypeID)
	suite.Nil(voucher.VoucherNumber)
	suite.Require().Len(voucher.Entries, 2)
	suite.Equal(domain.Debit, voucher.Entries[0].Side)
	suite.Equal("acc-cash", voucher.Entries[0].AccountID)
	suite.Equal(domain.Credit, voucher.Entries[1].Side)
	suite.Equal("acc-sales", voucher.Entries[1].AccountID)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateDraft_NonPositiveAmount() {
	ctx := context.Background()
	input := suite.draftInput()
	input.Amount = decimal.Zero

	suite.mockTypeRepo.On("FindVoucherTypeByCode", ctx, suite.companyID, domain.Sale).Return(suite.saleVoucherType(), nil).Once()

	_, err := suite.service.CreateDraft(ctx, suite.companyID, input)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "CreateDraftVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestCreateDraft_UnknownVoucherType() {
	ctx := context.Background()

	suite.mockTypeRepo.On("FindVoucherTypeByCode", ctx, suite.companyID, domain.Sale).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateDraft(ctx, suite.companyID, suite.draftInput())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *VoucherServiceTestSuite) TestCreateDraft_UnresolvedTemplate() {
	ctx := context.Background()
	input := suite.draftInput()
	input.SubType = domain.VoucherSubType("BARTER")

	suite.mockTypeRepo.On("FindVoucherTypeByCode", ctx, suite.companyID, domain.Sale).Return(suite.saleVoucherType(), nil).Once()

	_, err := suite.service.CreateDraft(ctx, suite.companyID, input)

	suite.ErrorIs(err, apperrors.ErrUnresolvedTemplate)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "CreateDraftVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestCreateDraft_UnknownAccount() {
	ctx := context.Background()

	suite.mockTypeRepo.On("FindVoucherTypeByCode", ctx, suite.companyID, domain.Sale).Return(suite.saleVoucherType(), nil).Once()
	// The sales account is missing from the lookup result.
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).
		Return(suite.knownAccounts("acc-cash"), nil).Once()

	_, err := suite.service.CreateDraft(ctx, suite.companyID, suite.draftInput())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "CreateDraftVoucher", mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateDraft ---

func (suite *VoucherServiceTestSuite) TestUpdateDraft_Success() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID:     voucherID,
		CompanyID:     suite.companyID,
		VoucherTypeID: suite.voucherTypeID,
		Status:        domain.Draft,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, voucherID).Return(existing, nil).Once()
	suite.mockTypeRepo.On("FindVoucherTypeByCode", ctx, suite.companyID, domain.Sale).Return(suite.saleVoucherType(), nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, suite.companyID, mock.AnythingOfType("[]string")).
		Return(suite.knownAccounts("acc-cash", "acc-sales"), nil).Once()
	suite.mockVoucherRepo.On("ReplaceDraftVoucher", ctx, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.Entry")).
		Return(nil).Once()

	voucher, err := suite.service.UpdateDraft(ctx, suite.companyID, voucherID, suite.draftInput())

	suite.Require().NoError(err)
	suite.Equal(voucherID, voucher.VoucherID)
	suite.Len(voucher.Entries, 2)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestUpdateDraft_PostedVoucherRejected() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	number := int64(42)
	posted := &domain.Voucher{
		VoucherID:     voucherID,
		CompanyID:     suite.companyID,
		Status:        domain.Posted,
		VoucherNumber: &number,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, voucherID).Return(posted, nil).Once()

	_, err := suite.service.UpdateDraft(ctx, suite.companyID, voucherID, suite.draftInput())

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "ReplaceDraftVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestUpdateDraft_OtherCompanyHidden() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	foreign := &domain.Voucher{
		VoucherID: voucherID,
		CompanyID: uuid.NewString(),
		Status:    domain.Draft,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, voucherID).Return(foreign, nil).Once()

	_, err := suite.service.UpdateDraft(ctx, suite.companyID, voucherID, suite.draftInput())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteDraft ---

func (suite *VoucherServiceTestSuite) TestDeleteDraft_Success() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID: voucherID,
		CompanyID: suite.companyID,
		Status:    domain.Draft,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, voucherID).Return(existing, nil).Once()
	suite.mockVoucherRepo.On("DeleteDraftVoucher", ctx, voucherID).Return(nil).Once()

	err := suite.service.DeleteDraft(ctx, suite.companyID, voucherID)

	suite.NoError(err)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestDeleteDraft_PostedVoucherRejected() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	number := int64(7)
	posted := &domain.Voucher{
		VoucherID:     voucherID,
		CompanyID:     suite.companyID,
		Status:        domain.Posted,
		VoucherNumber: &number,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, voucherID).Return(posted, nil).Once()

	err := suite.service.DeleteDraft(ctx, suite.companyID, voucherID)

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "DeleteDraftVoucher", mock.Anything, mock.Anything)
}

// --- PostVoucher ---

func (suite *VoucherServiceTestSuite) TestPostVoucher_Success() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID: voucherID,
		CompanyID: suite.companyID,
		Status:    domain.Draft,
	}
	expected := &domain.PostingResult{
		VoucherID:     voucherID,
		VoucherNumber: 12,
		Status:        domain.Posted,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, voucherID).Return(existing, nil).Once()
	suite.mockVoucherRepo.On("PostVoucher", ctx, voucherID).Return(expected, nil).Once()

	result, err := suite.service.PostVoucher(ctx, suite.companyID, voucherID)

	suite.Require().NoError(err)
	suite.Equal(int64(12), result.VoucherNumber)
	suite.Equal(domain.Posted, result.Status)
}

func (suite *VoucherServiceTestSuite) TestPostVoucher_SerializationConflictPassedThrough() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID: voucherID,
		CompanyID: suite.companyID,
		Status:    domain.Draft,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, voucherID).Return(existing, nil).Once()
	suite.mockVoucherRepo.On("PostVoucher", ctx, voucherID).Return(nil, apperrors.ErrSerializationConflict).Once()

	_, err := suite.service.PostVoucher(ctx, suite.companyID, voucherID)

	// Retryable errors must survive wrapping so callers can errors.Is on them.
	suite.ErrorIs(err, apperrors.ErrSerializationConflict)
}

func (suite *VoucherServiceTestSuite) TestPostVoucher_UnbalancedRejected() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID: voucherID,
		CompanyID: suite.companyID,
		Status:    domain.Draft,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, voucherID).Return(existing, nil).Once()
	suite.mockVoucherRepo.On("PostVoucher", ctx, voucherID).Return(nil, apperrors.ErrUnbalancedVoucher).Once()

	_, err := suite.service.PostVoucher(ctx, suite.companyID, voucherID)

	suite.ErrorIs(err, apperrors.ErrUnbalancedVoucher)
}

func (suite *VoucherServiceTestSuite) TestPostVoucher_NotFound() {
	ctx := context.Background()
	voucherID := uuid.NewString()

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, voucherID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostVoucher(ctx, suite.companyID, voucherID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "PostVoucher", mock.Anything, mock.Anything)
}

// --- Reads ---

func (suite *VoucherServiceTestSuite) TestGetVoucherByID_IncludesEntries() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	existing := &domain.Voucher{
		VoucherID: voucherID,
		CompanyID: suite.companyID,
		Status:    domain.Draft,
	}
	entries := []domain.Entry{
		{EntryID: uuid.NewString(), VoucherID: voucherID, Side: domain.Debit, Amount: decimal.NewFromInt(10)},
		{EntryID: uuid.NewString(), VoucherID: voucherID, Side: domain.Credit, Amount: decimal.NewFromInt(10)},
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, voucherID).Return(existing, nil).Once()
	suite.mockVoucherRepo.On("FindEntriesByVoucherID", ctx, voucherID).Return(entries, nil).Once()

	voucher, err := suite.service.GetVoucherByID(ctx, suite.companyID, voucherID)

	suite.Require().NoError(err)
	suite.Len(voucher.Entries, 2)
}

func (suite *VoucherServiceTestSuite) TestListDraftVouchers_DefaultLimit() {
	ctx := context.Background()

	suite.mockVoucherRepo.On("ListDraftVouchersByCompany", ctx, suite.companyID, 50).
		Return([]domain.Voucher{}, nil).Once()

	_, err := suite.service.ListDraftVouchers(ctx, suite.companyID, 0)

	suite.NoError(err)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}

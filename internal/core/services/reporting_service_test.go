package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
	"github.com/jgbarallobre/Contable/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

// Ensure MockReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context, companyID, periodID string) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, companyID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) GetGeneralLedgerData(ctx context.Context, companyID, accountID string, from, to time.Time) ([]domain.GeneralLedgerRow, error) {
	args := m.Called(ctx, companyID, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneralLedgerRow), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockPeriodRepo    *MockPeriodRepository
	mockAccountRepo   *MockAccountRepository
	service           portssvc.ReportingSvc
	caller            domain.AuthUser
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockPeriodRepo, suite.mockAccountRepo)

	suite.caller = domain.AuthUser{
		UserID:      uuid.NewString(),
		Username:    "viewer",
		CompanyID:   uuid.NewString(),
		RoleID:      "role-viewer",
		Permissions: domain.PermissionSet{"reports:read"},
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestTrialBalance_Success() {
	ctx := context.Background()
	period := &domain.Period{
		PeriodID:  uuid.NewString(),
		CompanyID: suite.caller.CompanyID,
		Year:      2024,
		Month:     2,
		Status:    domain.PeriodClosed,
	}
	rows := []domain.TrialBalanceRow{
		{AccountID: "acc-1", AccountCode: "1.1.01", AccountName: "Caja", TotalDebit: decimal.RequireFromString("100.00"), TotalCredit: decimal.Zero},
		{AccountID: "acc-2", AccountCode: "4.1.01", AccountName: "Ventas", TotalDebit: decimal.Zero, TotalCredit: decimal.RequireFromString("100.00")},
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, period.PeriodID).Return(period, nil).Once()
	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, suite.caller.CompanyID, period.PeriodID).Return(rows, nil).Once()

	got, err := suite.service.TrialBalance(ctx, suite.caller, period.PeriodID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_PeriodNotFound() {
	ctx := context.Background()
	periodID := uuid.NewString()

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, periodID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.TrialBalance(ctx, suite.caller, periodID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetTrialBalanceData", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_Success() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.caller.CompanyID,
		AccountCode: "1.1.01",
	}
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	rows := []domain.GeneralLedgerRow{
		{EntryID: uuid.NewString(), EntryNumber: "000001", EntryDate: from, Description: "Apertura", Debit: decimal.RequireFromString("50.00")},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.caller.CompanyID, account.AccountID).Return(account, nil).Once()
	suite.mockReportingRepo.On("GetGeneralLedgerData", ctx, suite.caller.CompanyID, account.AccountID, from, to).Return(rows, nil).Once()

	got, err := suite.service.GeneralLedger(ctx, suite.caller, account.AccountID, from, to)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_ReversedRange() {
	ctx := context.Background()
	from := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.GeneralLedger(ctx, suite.caller, uuid.NewString(), from, to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetGeneralLedgerData", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_Forbidden() {
	ctx := context.Background()
	caller := suite.caller
	caller.Permissions = domain.PermissionSet{"journal:read"}

	_, err := suite.service.TrialBalance(ctx, caller, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "FindPeriodByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

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
	"github.com/jgbarallobre/Contable/internal/dto"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

// Ensure MockJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, filter portsrepo.JournalEntryFilter, page pagination.Params) ([]domain.JournalEntry, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry *domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) ApproveEntry(ctx context.Context, companyID, entryID, approverID string, approvedAt time.Time) error {
	args := m.Called(ctx, companyID, entryID, approverID, approvedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) AnnulEntry(ctx context.Context, companyID, entryID, annullerID, reason string, annulledAt time.Time) error {
	args := m.Called(ctx, companyID, entryID, annullerID, reason, annulledAt)
	return args.Error(0)
}

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

// Ensure MockPeriodRepository implements portsrepo.PeriodRepositoryFacade
var _ portsrepo.PeriodRepositoryFacade = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, companyID, periodID string) (*domain.Period, error) {
	args := m.Called(ctx, companyID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) FindOpenPeriod(ctx context.Context, companyID string) (*domain.Period, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) FindPeriodByYearMonth(ctx context.Context, companyID string, year, month int) (*domain.Period, error) {
	args := m.Called(ctx, companyID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context, companyID string, year *int, status *domain.PeriodStatus) ([]domain.Period, error) {
	args := m.Called(ctx, companyID, year, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *MockPeriodRepository) SumApprovedTotals(ctx context.Context, periodID string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, periodID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockPeriodRepository) CreatePeriods(ctx context.Context, periods []domain.Period) error {
	args := m.Called(ctx, periods)
	return args.Error(0)
}

func (m *MockPeriodRepository) ClosePeriod(ctx context.Context, periodID, closerID string, note *string, closedAt time.Time) error {
	args := m.Called(ctx, periodID, closerID, note, closedAt)
	return args.Error(0)
}

func (m *MockPeriodRepository) ReopenPeriod(ctx context.Context, periodID, reopenerID string, note *string, reopenedAt time.Time) error {
	args := m.Called(ctx, periodID, reopenerID, note, reopenedAt)
	return args.Error(0)
}

// --- Test Suite Setup ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockPeriodRepo  *MockPeriodRepository
	service         portssvc.JournalSvcFacade
	caller          domain.AuthUser
	openPeriod      domain.Period
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockPeriodRepo)

	suite.caller = domain.AuthUser{
		UserID:    uuid.NewString(),
		Username:  "accountant",
		CompanyID: uuid.NewString(),
		RoleID:    "role-accountant",
		Permissions: domain.PermissionSet{
			"journal:create", "journal:read", "journal:approve",
			"journal:annul", "journal:reverse",
		},
	}

	suite.openPeriod = domain.Period{
		PeriodID:  uuid.NewString(),
		CompanyID: suite.caller.CompanyID,
		Year:      2024,
		Month:     2,
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}
}

func balancedCreateRequest(amount decimal.Decimal) dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryType:   domain.EntryExpense,
		EntryDate:   time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC),
		Description: "Pago de alquiler de oficina",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: "acc-expense", Debit: amount},
			{AccountID: "acc-bank", Credit: amount},
		},
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	amount := decimal.RequireFromString("125500.00")
	req := balancedCreateRequest(amount)

	suite.mockPeriodRepo.On("FindOpenPeriod", ctx, suite.caller.CompanyID).Return(&suite.openPeriod, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("*domain.JournalEntry")).
		Run(func(args mock.Arguments) {
			// The repository draws the number inside the save transaction.
			args.Get(1).(*domain.JournalEntry).EntryNumber = "000001"
		}).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.caller, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal("000001", entry.EntryNumber)
	suite.Equal(domain.EntryDraft, entry.Status)
	suite.Equal(suite.openPeriod.PeriodID, entry.PeriodID)
	suite.Equal("VES", entry.Currency)
	suite.True(entry.ExchangeRate.Equal(decimal.NewFromInt(1)))
	suite.True(entry.TotalDebit.Equal(amount))
	suite.True(entry.TotalCredit.Equal(amount))
	suite.Equal(suite.caller.UserID, entry.CreatedBy)
	suite.Require().Len(entry.Lines, 2)
	suite.Equal(1, entry.Lines[0].LineNumber)
	suite.Equal(2, entry.Lines[1].LineNumber)
	suite.Equal(entry.EntryID, entry.Lines[0].EntryID)

	suite.mockPeriodRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_ExplicitPeriod() {
	ctx := context.Background()
	req := balancedCreateRequest(decimal.NewFromInt(100))
	req.PeriodID = &suite.openPeriod.PeriodID

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, suite.openPeriod.PeriodID).Return(&suite.openPeriod, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("*domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.caller, req)

	suite.Require().NoError(err)
	suite.Equal(suite.openPeriod.PeriodID, entry.PeriodID)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "FindOpenPeriod", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryType:   domain.EntryDaily,
		EntryDate:   time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC),
		Description: "Asiento descuadrado",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: "acc-a", Debit: decimal.NewFromInt(100)},
			{AccountID: "acc-b", Credit: decimal.NewFromInt(90)},
		},
	}

	suite.mockPeriodRepo.On("FindOpenPeriod", ctx, suite.caller.CompanyID).Return(&suite.openPeriod, nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.caller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)

	var unbalanced *apperrors.UnbalancedError
	suite.Require().ErrorAs(err, &unbalanced)
	suite.Equal("100.00", unbalanced.TotalDebit.StringFixed(2))
	suite.Equal("90.00", unbalanced.TotalCredit.StringFixed(2))

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_WithinTolerance() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryType:   domain.EntryDaily,
		EntryDate:   time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC),
		Description: "Redondeo de conversion",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: "acc-a", Debit: decimal.RequireFromString("100.00")},
			{AccountID: "acc-b", Credit: decimal.RequireFromString("99.99")},
		},
	}

	suite.mockPeriodRepo.On("FindOpenPeriod", ctx, suite.caller.CompanyID).Return(&suite.openPeriod, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("*domain.JournalEntry")).Return(nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.caller, req)

	suite.Require().NoError(err)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_PeriodClosed() {
	ctx := context.Background()
	req := balancedCreateRequest(decimal.NewFromInt(50))
	closed := suite.openPeriod
	closed.Status = domain.PeriodClosed
	req.PeriodID = &closed.PeriodID

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, closed.PeriodID).Return(&closed, nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.caller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_NoOpenPeriod() {
	ctx := context.Background()
	req := balancedCreateRequest(decimal.NewFromInt(50))

	suite.mockPeriodRepo.On("FindOpenPeriod", ctx, suite.caller.CompanyID).Return(nil, apperrors.ErrNoOpenPeriod).Once()

	_, err := suite.service.CreateEntry(ctx, suite.caller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoOpenPeriod)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SingleLineAccepted() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryType:   domain.EntryAdjustment,
		EntryDate:   time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC),
		Description: "Ajuste de centimo",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: "acc-rounding", Debit: decimal.RequireFromString("0.01")},
		},
	}

	suite.mockPeriodRepo.On("FindOpenPeriod", ctx, suite.caller.CompanyID).Return(&suite.openPeriod, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("*domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.caller, req)

	suite.Require().NoError(err)
	suite.Require().Len(entry.Lines, 1)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_LineWithBothSidesAccepted() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryType:   domain.EntryDaily,
		EntryDate:   time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC),
		Description: "Cargo y abono en la misma linea",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: "acc-a", Debit: decimal.NewFromInt(40), Credit: decimal.NewFromInt(40)},
			{AccountID: "acc-b", Debit: decimal.NewFromInt(10)},
			{AccountID: "acc-c", Credit: decimal.NewFromInt(10)},
		},
	}

	suite.mockPeriodRepo.On("FindOpenPeriod", ctx, suite.caller.CompanyID).Return(&suite.openPeriod, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("*domain.JournalEntry")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.caller, req)

	suite.Require().NoError(err)
	suite.True(entry.TotalDebit.Equal(decimal.NewFromInt(50)))
	suite.True(entry.TotalCredit.Equal(decimal.NewFromInt(50)))
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_ClosedPeriodWinsOverBalance() {
	ctx := context.Background()
	closed := suite.openPeriod
	closed.Status = domain.PeriodClosed
	req := dto.CreateJournalEntryRequest{
		EntryType:   domain.EntryDaily,
		EntryDate:   time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC),
		Description: "Descuadrado en periodo cerrado",
		PeriodID:    &closed.PeriodID,
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: "acc-a", Debit: decimal.NewFromInt(100)},
			{AccountID: "acc-b", Credit: decimal.NewFromInt(30)},
		},
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, closed.PeriodID).Return(&closed, nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.caller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodClosed)
	suite.NotErrorIs(err, apperrors.ErrUnbalanced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Forbidden() {
	ctx := context.Background()
	caller := suite.caller
	caller.Permissions = domain.PermissionSet{"journal:read"}

	_, err := suite.service.CreateEntry(ctx, caller, balancedCreateRequest(decimal.NewFromInt(10)))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Unauthenticated() {
	ctx := context.Background()

	_, err := suite.service.CreateEntry(ctx, domain.AuthUser{}, balancedCreateRequest(decimal.NewFromInt(10)))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *JournalServiceTestSuite) TestApproveEntry_Success() {
	ctx := context.Background()
	entry := &domain.JournalEntry{
		EntryID:     uuid.NewString(),
		CompanyID:   suite.caller.CompanyID,
		EntryNumber: "000007",
		Status:      domain.EntryDraft,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.caller.CompanyID, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("ApproveEntry", ctx, suite.caller.CompanyID, entry.EntryID, suite.caller.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	approved, err := suite.service.ApproveEntry(ctx, suite.caller, entry.EntryID)

	suite.Require().NoError(err)
	suite.Equal(domain.EntryApproved, approved.Status)
	suite.Require().NotNil(approved.ApprovedBy)
	suite.Equal(suite.caller.UserID, *approved.ApprovedBy)
	suite.NotNil(approved.ApprovedAt)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestApproveEntry_NotDraft() {
	ctx := context.Background()
	entry := &domain.JournalEntry{
		EntryID:   uuid.NewString(),
		CompanyID: suite.caller.CompanyID,
		Status:    domain.EntryApproved,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.caller.CompanyID, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.ApproveEntry(ctx, suite.caller, entry.EntryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ApproveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestAnnulEntry_Success() {
	ctx := context.Background()
	entry := &domain.JournalEntry{
		EntryID:   uuid.NewString(),
		CompanyID: suite.caller.CompanyID,
		Status:    domain.EntryApproved,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.caller.CompanyID, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("AnnulEntry", ctx, suite.caller.CompanyID, entry.EntryID, suite.caller.UserID, "Factura duplicada", mock.AnythingOfType("time.Time")).Return(nil).Once()

	annulled, err := suite.service.AnnulEntry(ctx, suite.caller, entry.EntryID, "Factura duplicada")

	suite.Require().NoError(err)
	suite.Equal(domain.EntryAnnuled, annulled.Status)
	suite.Require().NotNil(annulled.AnnulmentReason)
	suite.Equal("Factura duplicada", *annulled.AnnulmentReason)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAnnulEntry_ReasonRequired() {
	ctx := context.Background()

	_, err := suite.service.AnnulEntry(ctx, suite.caller, uuid.NewString(), "   ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReasonRequired)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindEntryByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestAnnulEntry_NotApproved() {
	ctx := context.Background()
	entry := &domain.JournalEntry{
		EntryID:   uuid.NewString(),
		CompanyID: suite.caller.CompanyID,
		Status:    domain.EntryDraft,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.caller.CompanyID, entry.EntryID).Return(entry, nil).Once()

	_, err := suite.service.AnnulEntry(ctx, suite.caller, entry.EntryID, "razon valida")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JournalServiceTestSuite) TestReverseEntry_Success() {
	ctx := context.Background()
	ref := "FAC-0099"
	original := &domain.JournalEntry{
		EntryID:      uuid.NewString(),
		CompanyID:    suite.caller.CompanyID,
		PeriodID:     suite.openPeriod.PeriodID,
		EntryType:    domain.EntryExpense,
		EntryNumber:  "000042",
		EntryDate:    time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Description:  "Compra de insumos",
		Reference:    &ref,
		Status:       domain.EntryApproved,
		TotalDebit:   decimal.RequireFromString("300.00"),
		TotalCredit:  decimal.RequireFromString("300.00"),
		Currency:     "VES",
		ExchangeRate: decimal.NewFromInt(1),
		Lines: []domain.JournalLine{
			{LineNumber: 1, AccountID: "acc-expense", Debit: decimal.RequireFromString("300.00")},
			{LineNumber: 2, AccountID: "acc-bank", Credit: decimal.RequireFromString("300.00")},
		},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.caller.CompanyID, original.EntryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("*domain.JournalEntry")).Return(nil).Once()

	reversal, err := suite.service.ReverseEntry(ctx, suite.caller, original.EntryID)

	suite.Require().NoError(err)
	suite.NotEqual(original.EntryID, reversal.EntryID)
	suite.Equal(domain.EntryAdjustment, reversal.EntryType)
	suite.Equal("000042-R", reversal.EntryNumber)
	suite.Equal(domain.EntryApproved, reversal.Status)
	suite.Equal("REVERSO: Compra de insumos", reversal.Description)
	suite.Require().NotNil(reversal.Reference)
	suite.Equal("Revierte: 000042", *reversal.Reference)
	suite.Require().NotNil(reversal.ReversedEntryID)
	suite.Equal(original.EntryID, *reversal.ReversedEntryID)

	// Debits and credits trade places, in the header and per line.
	suite.True(reversal.TotalDebit.Equal(original.TotalCredit))
	suite.True(reversal.TotalCredit.Equal(original.TotalDebit))
	suite.Require().Len(reversal.Lines, 2)
	suite.True(reversal.Lines[0].Credit.Equal(original.Lines[0].Debit))
	suite.True(reversal.Lines[0].Debit.Equal(original.Lines[0].Credit))
	suite.Equal(original.Lines[0].LineNumber, reversal.Lines[0].LineNumber)

	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestReverseEntry_DraftOriginalAllowed() {
	ctx := context.Background()
	original := &domain.JournalEntry{
		EntryID:     uuid.NewString(),
		CompanyID:   suite.caller.CompanyID,
		EntryNumber: "000050",
		Status:      domain.EntryDraft,
		Lines: []domain.JournalLine{
			{LineNumber: 1, AccountID: "acc-a", Debit: decimal.NewFromInt(10)},
			{LineNumber: 2, AccountID: "acc-b", Credit: decimal.NewFromInt(10)},
		},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.caller.CompanyID, original.EntryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("*domain.JournalEntry")).Return(nil).Once()

	reversal, err := suite.service.ReverseEntry(ctx, suite.caller, original.EntryID)

	suite.Require().NoError(err)
	suite.Equal(domain.EntryApproved, reversal.Status)
}

func (suite *JournalServiceTestSuite) TestListEntries_PassesNormalizedPage() {
	ctx := context.Background()
	params := dto.ListJournalEntriesParams{Page: 0, PageSize: 500}

	expectedPage := pagination.NewParams(0, 500)
	suite.mockJournalRepo.On("ListEntries", ctx, mock.AnythingOfType("repositories.JournalEntryFilter"), expectedPage).
		Return([]domain.JournalEntry{}, int64(0), nil).Once()

	_, _, page, err := suite.service.ListEntries(ctx, suite.caller, params)

	suite.Require().NoError(err)
	suite.Equal(1, page.Page)
	suite.Equal(100, page.PageSize)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

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
	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
	"github.com/jgbarallobre/Contable/internal/core/services"
)

// --- Test Suite Setup ---
type PeriodServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPeriodRepository
	service  portssvc.PeriodSvcFacade
	caller   domain.AuthUser
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPeriodRepository)
	suite.service = services.NewPeriodService(suite.mockRepo)

	suite.caller = domain.AuthUser{
		UserID:    uuid.NewString(),
		Username:  "accountant",
		CompanyID: uuid.NewString(),
		RoleID:    "role-accountant",
		Permissions: domain.PermissionSet{
			"periods:create", "periods:read", "periods:close", "periods:reopen",
		},
	}
}

func (suite *PeriodServiceTestSuite) newPeriod(year, month int, status domain.PeriodStatus) domain.Period {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return domain.Period{
		PeriodID:  uuid.NewString(),
		CompanyID: suite.caller.CompanyID,
		Year:      year,
		Month:     month,
		StartDate: start,
		EndDate:   start.AddDate(0, 1, -1),
		Status:    status,
	}
}

// --- Test Cases ---

func (suite *PeriodServiceTestSuite) TestClosePeriod_Success() {
	ctx := context.Background()
	period := suite.newPeriod(2024, 3, domain.PeriodOpen)
	total := decimal.RequireFromString("45000.00")

	suite.mockRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, period.PeriodID).Return(&period, nil).Once()
	suite.mockRepo.On("SumApprovedTotals", ctx, period.PeriodID).Return(total, total, nil).Once()
	suite.mockRepo.On("ClosePeriod", ctx, period.PeriodID, suite.caller.UserID, (*string)(nil), mock.AnythingOfType("time.Time")).Return(nil).Once()

	closed, err := suite.service.ClosePeriod(ctx, suite.caller, period.PeriodID, nil)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodClosed, closed.Status)
	suite.Require().NotNil(closed.ClosedBy)
	suite.Equal(suite.caller.UserID, *closed.ClosedBy)
	suite.NotNil(closed.ClosedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_UnbalancedRefused() {
	ctx := context.Background()
	period := suite.newPeriod(2024, 3, domain.PeriodOpen)

	suite.mockRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, period.PeriodID).Return(&period, nil).Once()
	suite.mockRepo.On("SumApprovedTotals", ctx, period.PeriodID).
		Return(decimal.RequireFromString("500.00"), decimal.RequireFromString("480.00"), nil).Once()

	_, err := suite.service.ClosePeriod(ctx, suite.caller, period.PeriodID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPeriodUnbalanced)
	suite.Contains(err.Error(), "500.00")
	suite.Contains(err.Error(), "480.00")
	suite.mockRepo.AssertNotCalled(suite.T(), "ClosePeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_AlreadyClosed() {
	ctx := context.Background()
	period := suite.newPeriod(2024, 3, domain.PeriodClosed)

	suite.mockRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, period.PeriodID).Return(&period, nil).Once()

	_, err := suite.service.ClosePeriod(ctx, suite.caller, period.PeriodID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "SumApprovedTotals", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_EmptyPeriodCloses() {
	ctx := context.Background()
	period := suite.newPeriod(2024, 3, domain.PeriodOpen)
	note := "Sin movimientos"

	suite.mockRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, period.PeriodID).Return(&period, nil).Once()
	suite.mockRepo.On("SumApprovedTotals", ctx, period.PeriodID).Return(decimal.Zero, decimal.Zero, nil).Once()
	suite.mockRepo.On("ClosePeriod", ctx, period.PeriodID, suite.caller.UserID, &note, mock.AnythingOfType("time.Time")).Return(nil).Once()

	closed, err := suite.service.ClosePeriod(ctx, suite.caller, period.PeriodID, &note)

	suite.Require().NoError(err)
	suite.Require().NotNil(closed.ClosingNote)
	suite.Equal(note, *closed.ClosingNote)
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_Forbidden() {
	ctx := context.Background()
	caller := suite.caller
	caller.Permissions = domain.PermissionSet{"periods:read"}

	_, err := suite.service.ClosePeriod(ctx, caller, uuid.NewString(), nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPeriodByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestReopenPeriod_Success() {
	ctx := context.Background()
	period := suite.newPeriod(2024, 3, domain.PeriodClosed)
	next := suite.newPeriod(2024, 4, domain.PeriodClosed)

	suite.mockRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, period.PeriodID).Return(&period, nil).Once()
	suite.mockRepo.On("FindPeriodByYearMonth", ctx, suite.caller.CompanyID, 2024, 4).Return(&next, nil).Once()
	suite.mockRepo.On("ReopenPeriod", ctx, period.PeriodID, suite.caller.UserID, (*string)(nil), mock.AnythingOfType("time.Time")).Return(nil).Once()

	reopened, err := suite.service.ReopenPeriod(ctx, suite.caller, period.PeriodID, nil)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodOpen, reopened.Status)
	suite.Require().NotNil(reopened.ReopenedBy)
	suite.Equal(suite.caller.UserID, *reopened.ReopenedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestReopenPeriod_NextMonthOpen() {
	ctx := context.Background()
	period := suite.newPeriod(2024, 3, domain.PeriodClosed)
	next := suite.newPeriod(2024, 4, domain.PeriodOpen)

	suite.mockRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, period.PeriodID).Return(&period, nil).Once()
	suite.mockRepo.On("FindPeriodByYearMonth", ctx, suite.caller.CompanyID, 2024, 4).Return(&next, nil).Once()

	_, err := suite.service.ReopenPeriod(ctx, suite.caller, period.PeriodID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNextPeriodOpen)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReopenPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestReopenPeriod_NoNextPeriod() {
	// December has no following month in the same year's registry, so the
	// lookup misses and the reopen proceeds.
	ctx := context.Background()
	period := suite.newPeriod(2024, 12, domain.PeriodClosed)

	suite.mockRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, period.PeriodID).Return(&period, nil).Once()
	suite.mockRepo.On("FindPeriodByYearMonth", ctx, suite.caller.CompanyID, 2024, 13).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("ReopenPeriod", ctx, period.PeriodID, suite.caller.UserID, (*string)(nil), mock.AnythingOfType("time.Time")).Return(nil).Once()

	reopened, err := suite.service.ReopenPeriod(ctx, suite.caller, period.PeriodID, nil)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodOpen, reopened.Status)
}

func (suite *PeriodServiceTestSuite) TestReopenPeriod_NotClosed() {
	ctx := context.Background()
	period := suite.newPeriod(2024, 3, domain.PeriodOpen)

	suite.mockRepo.On("FindPeriodByID", ctx, suite.caller.CompanyID, period.PeriodID).Return(&period, nil).Once()

	_, err := suite.service.ReopenPeriod(ctx, suite.caller, period.PeriodID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPeriodByYearMonth", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestCreateYear_Success() {
	ctx := context.Background()
	year := 2025

	suite.mockRepo.On("ListPeriods", ctx, suite.caller.CompanyID, &year, (*domain.PeriodStatus)(nil)).Return([]domain.Period{}, nil).Once()
	suite.mockRepo.On("CreatePeriods", ctx, mock.AnythingOfType("[]domain.Period")).Return(nil).Once()

	periods, err := suite.service.CreateYear(ctx, suite.caller, year)

	suite.Require().NoError(err)
	suite.Require().Len(periods, 12)
	for i, p := range periods {
		suite.Equal(year, p.Year)
		suite.Equal(i+1, p.Month)
		suite.Equal(domain.PeriodOpen, p.Status)
		suite.Equal(time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC), p.StartDate)
	}
	suite.Equal(time.Date(year, 2, 28, 0, 0, 0, 0, time.UTC), periods[1].EndDate)
	suite.Equal(time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC), periods[11].EndDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreateYear_Duplicate() {
	ctx := context.Background()
	year := 2024
	existing := []domain.Period{suite.newPeriod(2024, 1, domain.PeriodClosed)}

	suite.mockRepo.On("ListPeriods", ctx, suite.caller.CompanyID, &year, (*domain.PeriodStatus)(nil)).Return(existing, nil).Once()

	_, err := suite.service.CreateYear(ctx, suite.caller, year)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreatePeriods", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestCreateYear_YearOutOfRange() {
	ctx := context.Background()

	_, err := suite.service.CreateYear(ctx, suite.caller, 1850)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListPeriods", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestFindOpenPeriod_Passthrough() {
	ctx := context.Background()
	period := suite.newPeriod(2024, 2, domain.PeriodOpen)

	suite.mockRepo.On("FindOpenPeriod", ctx, suite.caller.CompanyID).Return(&period, nil).Once()

	found, err := suite.service.FindOpenPeriod(ctx, suite.caller)

	suite.Require().NoError(err)
	suite.Equal(period.PeriodID, found.PeriodID)
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}

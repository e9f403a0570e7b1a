package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
	"github.com/jgbarallobre/Contable/internal/core/services"
	"github.com/jgbarallobre/Contable/internal/dto"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

// Ensure MockCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompaniesForUser(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindMembership(ctx context.Context, userID, companyID string) (*domain.UserCompany, error) {
	args := m.Called(ctx, userID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCompany), args.Error(1)
}

func (m *MockCompanyRepository) CreateCompanyWithSetup(ctx context.Context, company domain.Company, membership domain.UserCompany, periods []domain.Period) error {
	args := m.Called(ctx, company, membership, periods)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// --- Test Suite Setup ---
type CompanyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCompanyRepository
	service  portssvc.CompanySvcFacade
	caller   domain.AuthUser
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCompanyRepository)
	suite.service = services.NewCompanyService(suite.mockRepo)

	suite.caller = domain.AuthUser{
		UserID:    uuid.NewString(),
		Username:  "admin",
		CompanyID: uuid.NewString(),
		RoleID:    "role-admin",
		Permissions: domain.PermissionSet{
			"companies:create", "companies:read", "companies:update",
		},
	}
}

// --- Test Cases ---

func (suite *CompanyServiceTestSuite) TestCreateCompany_BootstrapsSetup() {
	ctx := context.Background()
	req := dto.CreateCompanyRequest{
		Code:      "NORTE",
		LegalName: "Comercializadora del Norte C.A.",
		RIF:       "J-41234567-8",
	}

	suite.mockRepo.On("FindCompanyByCode", ctx, "NORTE").Return(nil, apperrors.ErrNotFound).Once()

	var gotMembership domain.UserCompany
	var gotPeriods []domain.Period
	suite.mockRepo.On("CreateCompanyWithSetup", ctx,
		mock.AnythingOfType("domain.Company"),
		mock.AnythingOfType("domain.UserCompany"),
		mock.AnythingOfType("[]domain.Period"),
	).Run(func(args mock.Arguments) {
		gotMembership = args.Get(2).(domain.UserCompany)
		gotPeriods = args.Get(3).([]domain.Period)
	}).Return(nil).Once()

	company, err := suite.service.CreateCompany(ctx, suite.caller, req)

	suite.Require().NoError(err)
	suite.Equal("NORTE", company.Code)
	suite.Equal("VES", company.FunctionalCurrency)
	suite.True(company.IsActive)

	suite.Equal(suite.caller.UserID, gotMembership.UserID)
	suite.Equal(company.CompanyID, gotMembership.CompanyID)
	suite.Equal(services.AdminRoleID, gotMembership.RoleID)
	suite.True(gotMembership.IsDefault)

	suite.Require().Len(gotPeriods, 12)
	suite.Equal(time.Now().UTC().Year(), gotPeriods[0].Year)
	suite.Equal(domain.PeriodOpen, gotPeriods[0].Status)
	suite.Equal(company.CompanyID, gotPeriods[0].CompanyID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_DuplicateCode() {
	ctx := context.Background()
	existing := &domain.Company{CompanyID: uuid.NewString(), Code: "NORTE"}
	req := dto.CreateCompanyRequest{
		Code:      "NORTE",
		LegalName: "Comercializadora del Norte C.A.",
		RIF:       "J-41234567-8",
	}

	suite.mockRepo.On("FindCompanyByCode", ctx, "NORTE").Return(existing, nil).Once()

	_, err := suite.service.CreateCompany(ctx, suite.caller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateCompanyWithSetup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestGetCompany_MembershipRequired() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockRepo.On("FindMembership", ctx, suite.caller.UserID, companyID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCompany(ctx, suite.caller, companyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCompanyByID", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestGetCompany_Success() {
	ctx := context.Background()
	companyID := uuid.NewString()
	membership := &domain.UserCompany{UserID: suite.caller.UserID, CompanyID: companyID, IsActive: true}
	company := &domain.Company{CompanyID: companyID, Code: "MAIN"}

	suite.mockRepo.On("FindMembership", ctx, suite.caller.UserID, companyID).Return(membership, nil).Once()
	suite.mockRepo.On("FindCompanyByID", ctx, companyID).Return(company, nil).Once()

	got, err := suite.service.GetCompany(ctx, suite.caller, companyID)

	suite.Require().NoError(err)
	suite.Equal("MAIN", got.Code)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_PatchesFields() {
	ctx := context.Background()
	companyID := uuid.NewString()
	stored := &domain.Company{
		CompanyID: companyID,
		Code:      "MAIN",
		LegalName: "Empresa Principal C.A.",
		IsActive:  true,
	}
	newName := "Empresa Principal 2024 C.A."
	req := dto.UpdateCompanyRequest{LegalName: &newName}

	suite.mockRepo.On("FindCompanyByID", ctx, companyID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateCompany", ctx, mock.AnythingOfType("domain.Company")).Return(nil).Once()

	updated, err := suite.service.UpdateCompany(ctx, suite.caller, companyID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.LegalName)
	suite.Equal("MAIN", updated.Code)
	suite.Equal(suite.caller.UserID, updated.LastUpdatedBy)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}

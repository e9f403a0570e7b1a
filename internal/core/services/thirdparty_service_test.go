package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
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

// --- Mock ThirdPartyRepository ---
type MockThirdPartyRepository struct {
	mock.Mock
}

// Ensure MockThirdPartyRepository implements portsrepo.ThirdPartyRepositoryFacade
var _ portsrepo.ThirdPartyRepositoryFacade = (*MockThirdPartyRepository)(nil)

func (m *MockThirdPartyRepository) FindThirdPartyByID(ctx context.Context, companyID, thirdPartyID string) (*domain.ThirdParty, error) {
	args := m.Called(ctx, companyID, thirdPartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThirdParty), args.Error(1)
}

func (m *MockThirdPartyRepository) FindThirdPartyByRIF(ctx context.Context, companyID, rif string) (*domain.ThirdParty, error) {
	args := m.Called(ctx, companyID, rif)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThirdParty), args.Error(1)
}

func (m *MockThirdPartyRepository) ListThirdParties(ctx context.Context, filter portsrepo.ThirdPartyFilter, page pagination.Params) ([]domain.ThirdParty, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ThirdParty), args.Get(1).(int64), args.Error(2)
}

func (m *MockThirdPartyRepository) SaveThirdParty(ctx context.Context, tp domain.ThirdParty) error {
	args := m.Called(ctx, tp)
	return args.Error(0)
}

func (m *MockThirdPartyRepository) UpdateThirdParty(ctx context.Context, tp domain.ThirdParty) error {
	args := m.Called(ctx, tp)
	return args.Error(0)
}

// --- Test Suite Setup ---
type ThirdPartyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockThirdPartyRepository
	service  portssvc.ThirdPartySvcFacade
	caller   domain.AuthUser
}

func (suite *ThirdPartyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockThirdPartyRepository)
	suite.service = services.NewThirdPartyService(suite.mockRepo)

	suite.caller = domain.AuthUser{
		UserID:    uuid.NewString(),
		Username:  "accountant",
		CompanyID: uuid.NewString(),
		RoleID:    "role-accountant",
		Permissions: domain.PermissionSet{
			"thirdparties:create", "thirdparties:read", "thirdparties:update", "thirdparties:delete",
		},
	}
}

// --- Test Cases ---

func (suite *ThirdPartyServiceTestSuite) TestCreateThirdParty_NormalizesRIF() {
	ctx := context.Background()
	req := dto.CreateThirdPartyRequest{
		ThirdPartyType: domain.ThirdPartySupplier,
		RIF:            "  j-12345678-9 ",
		LegalName:      "Distribuidora El Sol C.A.",
	}

	suite.mockRepo.On("FindThirdPartyByRIF", ctx, suite.caller.CompanyID, "J-12345678-9").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveThirdParty", ctx, mock.AnythingOfType("domain.ThirdParty")).Return(nil).Once()

	tp, err := suite.service.CreateThirdParty(ctx, suite.caller, req)

	suite.Require().NoError(err)
	suite.Equal("J-12345678-9", tp.RIF)
	suite.True(tp.IsActive)
	suite.Equal(suite.caller.CompanyID, tp.CompanyID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ThirdPartyServiceTestSuite) TestCreateThirdParty_DuplicateRIF() {
	ctx := context.Background()
	existing := &domain.ThirdParty{ThirdPartyID: uuid.NewString(), RIF: "J-12345678-9"}
	req := dto.CreateThirdPartyRequest{
		ThirdPartyType: domain.ThirdPartySupplier,
		RIF:            "J-12345678-9",
		LegalName:      "Distribuidora El Sol C.A.",
	}

	suite.mockRepo.On("FindThirdPartyByRIF", ctx, suite.caller.CompanyID, "J-12345678-9").Return(existing, nil).Once()

	_, err := suite.service.CreateThirdParty(ctx, suite.caller, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveThirdParty", mock.Anything, mock.Anything)
}

func (suite *ThirdPartyServiceTestSuite) TestListThirdParties_BuildsFilter() {
	ctx := context.Background()
	tpType := "SUPPLIER"
	search := "sol"
	params := dto.ListThirdPartiesParams{
		Page:           1,
		PageSize:       20,
		ThirdPartyType: &tpType,
		Search:         &search,
		ActiveOnly:     true,
	}
	wantType := domain.ThirdPartySupplier
	wantFilter := portsrepo.ThirdPartyFilter{
		CompanyID:      suite.caller.CompanyID,
		ThirdPartyType: &wantType,
		Search:         &search,
		ActiveOnly:     true,
	}

	suite.mockRepo.On("ListThirdParties", ctx, wantFilter, pagination.NewParams(1, 20)).
		Return([]domain.ThirdParty{}, int64(0), nil).Once()

	_, _, _, err := suite.service.ListThirdParties(ctx, suite.caller, params)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ThirdPartyServiceTestSuite) TestDeactivateThirdParty_SoftDeletes() {
	ctx := context.Background()
	tpID := uuid.NewString()
	stored := &domain.ThirdParty{
		ThirdPartyID: tpID,
		CompanyID:    suite.caller.CompanyID,
		RIF:          "V-98765432-1",
		LegalName:    "Maria Perez",
		IsActive:     true,
	}

	suite.mockRepo.On("FindThirdPartyByID", ctx, suite.caller.CompanyID, tpID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateThirdParty", ctx, mock.MatchedBy(func(tp domain.ThirdParty) bool {
		return tp.ThirdPartyID == tpID && !tp.IsActive
	})).Return(nil).Once()

	err := suite.service.DeactivateThirdParty(ctx, suite.caller, tpID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestThirdPartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ThirdPartyServiceTestSuite))
}

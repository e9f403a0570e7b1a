package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
	"github.com/jgbarallobre/Contable/internal/dto"
	"github.com/jgbarallobre/Contable/internal/middleware"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

// thirdPartyService implements counterparty management.
type thirdPartyService struct {
	thirdPartyRepo portsrepo.ThirdPartyRepositoryFacade
}

// NewThirdPartyService creates a new third party service.
func NewThirdPartyService(thirdPartyRepo portsrepo.ThirdPartyRepositoryFacade) portssvc.ThirdPartySvcFacade {
	return &thirdPartyService{thirdPartyRepo: thirdPartyRepo}
}

// Ensure thirdPartyService implements the portssvc.ThirdPartySvcFacade interface
var _ portssvc.ThirdPartySvcFacade = (*thirdPartyService)(nil)

// CreateThirdParty registers a counterparty. The RIF must be unique within
// the company.
func (s *thirdPartyService) CreateThirdParty(ctx context.Context, caller domain.AuthUser, req dto.CreateThirdPartyRequest) (*domain.ThirdParty, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(caller, "thirdparties", "create"); err != nil {
		return nil, err
	}

	rif := strings.ToUpper(strings.TrimSpace(req.RIF))
	if rif == "" || strings.TrimSpace(req.LegalName) == "" {
		return nil, fmt.Errorf("%w: RIF and legal name are required", apperrors.ErrValidation)
	}

	if _, err := s.thirdPartyRepo.FindThirdPartyByRIF(ctx, caller.CompanyID, rif); err == nil {
		return nil, fmt.Errorf("%w: RIF %s already registered", apperrors.ErrDuplicate, rif)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	tp := domain.ThirdParty{
		ThirdPartyID:       uuid.NewString(),
		CompanyID:          caller.CompanyID,
		ThirdPartyType:     req.ThirdPartyType,
		RIF:                rif,
		LegalName:          req.LegalName,
		CommercialName:     req.CommercialName,
		FiscalAddress:      req.FiscalAddress,
		Phone:              req.Phone,
		Email:              req.Email,
		ContactPerson:      req.ContactPerson,
		TaxCategory:        req.TaxCategory,
		IsWithholdingAgent: req.IsWithholdingAgent,
		IVAApplicable:      req.IVAApplicable,
		ISLRApplicable:     req.ISLRApplicable,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.thirdPartyRepo.SaveThirdParty(ctx, tp); err != nil {
		logger.Error("Failed to save third party", slog.String("error", err.Error()), slog.String("rif", rif))
		return nil, err
	}

	logger.Info("Third party created", slog.String("third_party_id", tp.ThirdPartyID), slog.String("rif", rif))
	return &tp, nil
}

// GetThirdParty retrieves a third party by id.
func (s *thirdPartyService) GetThirdParty(ctx context.Context, caller domain.AuthUser, thirdPartyID string) (*domain.ThirdParty, error) {
	if err := requirePermission(caller, "thirdparties", "read"); err != nil {
		return nil, err
	}
	return s.thirdPartyRepo.FindThirdPartyByID(ctx, caller.CompanyID, thirdPartyID)
}

// ListThirdParties retrieves one page of third parties matching the filters.
func (s *thirdPartyService) ListThirdParties(ctx context.Context, caller domain.AuthUser, params dto.ListThirdPartiesParams) ([]domain.ThirdParty, int64, pagination.Params, error) {
	page := pagination.NewParams(params.Page, params.PageSize)

	if err := requirePermission(caller, "thirdparties", "read"); err != nil {
		return nil, 0, page, err
	}

	filter := portsrepo.ThirdPartyFilter{
		CompanyID:  caller.CompanyID,
		Search:     params.Search,
		ActiveOnly: params.ActiveOnly,
	}
	if params.ThirdPartyType != nil {
		tpType := domain.ThirdPartyType(*params.ThirdPartyType)
		filter.ThirdPartyType = &tpType
	}

	parties, total, err := s.thirdPartyRepo.ListThirdParties(ctx, filter, page)
	if err != nil {
		return nil, 0, page, err
	}
	return parties, total, page, nil
}

// UpdateThirdParty applies the patch fields of the request.
func (s *thirdPartyService) UpdateThirdParty(ctx context.Context, caller domain.AuthUser, thirdPartyID string, req dto.UpdateThirdPartyRequest) (*domain.ThirdParty, error) {
	if err := requirePermission(caller, "thirdparties", "update"); err != nil {
		return nil, err
	}

	tp, err := s.thirdPartyRepo.FindThirdPartyByID(ctx, caller.CompanyID, thirdPartyID)
	if err != nil {
		return nil, err
	}

	if req.LegalName != nil {
		if strings.TrimSpace(*req.LegalName) == "" {
			return nil, fmt.Errorf("%w: legal name cannot be empty", apperrors.ErrValidation)
		}
		tp.LegalName = *req.LegalName
	}
	if req.CommercialName != nil {
		tp.CommercialName = req.CommercialName
	}
	if req.FiscalAddress != nil {
		tp.FiscalAddress = req.FiscalAddress
	}
	if req.Phone != nil {
		tp.Phone = req.Phone
	}
	if req.Email != nil {
		tp.Email = req.Email
	}
	if req.ContactPerson != nil {
		tp.ContactPerson = req.ContactPerson
	}
	if req.TaxCategory != nil {
		tp.TaxCategory = req.TaxCategory
	}
	if req.IsWithholdingAgent != nil {
		tp.IsWithholdingAgent = *req.IsWithholdingAgent
	}
	if req.IVAApplicable != nil {
		tp.IVAApplicable = *req.IVAApplicable
	}
	if req.ISLRApplicable != nil {
		tp.ISLRApplicable = *req.ISLRApplicable
	}
	if req.IsActive != nil {
		tp.IsActive = *req.IsActive
	}

	now := time.Now().UTC()
	tp.LastUpdatedAt = now
	tp.LastUpdatedBy = caller.UserID

	if err := s.thirdPartyRepo.UpdateThirdParty(ctx, *tp); err != nil {
		return nil, err
	}
	return tp, nil
}

// DeactivateThirdParty soft-deletes a third party.
func (s *thirdPartyService) DeactivateThirdParty(ctx context.Context, caller domain.AuthUser, thirdPartyID string) error {
	if err := requirePermission(caller, "thirdparties", "delete"); err != nil {
		return err
	}

	tp, err := s.thirdPartyRepo.FindThirdPartyByID(ctx, caller.CompanyID, thirdPartyID)
	if err != nil {
		return err
	}

	tp.IsActive = false
	tp.LastUpdatedAt = time.Now().UTC()
	tp.LastUpdatedBy = caller.UserID
	return s.thirdPartyRepo.UpdateThirdParty(ctx, *tp)
}

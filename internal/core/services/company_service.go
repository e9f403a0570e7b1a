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
)

// AdminRoleID is the system role granted to the creator of a company.
const AdminRoleID = "role-admin"

// companyService implements company management and the creation bootstrap.
type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

// Ensure companyService implements the portssvc.CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany creates a company and bootstraps everything a fresh company
// needs to start posting: the creator's admin membership and the current
// year's twelve OPEN periods, all in one database transaction.
func (s *companyService) CreateCompany(ctx context.Context, caller domain.AuthUser, req dto.CreateCompanyRequest) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(caller, "companies", "create"); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	if code == "" || strings.TrimSpace(req.LegalName) == "" || strings.TrimSpace(req.RIF) == "" {
		return nil, fmt.Errorf("%w: code, legal name and RIF are required", apperrors.ErrValidation)
	}

	if _, err := s.companyRepo.FindCompanyByCode(ctx, code); err == nil {
		return nil, fmt.Errorf("%w: company code %s already exists", apperrors.ErrDuplicate, code)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	functionalCurrency := req.FunctionalCurrency
	if functionalCurrency == "" {
		functionalCurrency = defaultCurrency
	}

	now := time.Now().UTC()
	company := domain.Company{
		CompanyID:               uuid.NewString(),
		Code:                    code,
		LegalName:               req.LegalName,
		CommercialName:          req.CommercialName,
		RIF:                     req.RIF,
		FiscalAddress:           req.FiscalAddress,
		Phone:                   req.Phone,
		Email:                   req.Email,
		Activity:                req.Activity,
		FunctionalCurrency:      functionalCurrency,
		SecondaryCurrency:       req.SecondaryCurrency,
		IVAAliquot:              req.IVAAliquot,
		ReducedIVAAliquot:       req.ReducedIVAAliquot,
		AdditionalIVAAliquot:    req.AdditionalIVAAliquot,
		IGTFAliquot:             req.IGTFAliquot,
		RetentionPercentage:     req.RetentionPercentage,
		ISLRRetentionPercentage: req.ISLRRetentionPercentage,
		IsActive:                true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	membership := domain.UserCompany{
		UserCompanyID: uuid.NewString(),
		UserID:        caller.UserID,
		CompanyID:     company.CompanyID,
		RoleID:        AdminRoleID,
		IsDefault:     true,
		IsActive:      true,
	}

	periods := newYearPeriods(company.CompanyID, now.Year(), caller.UserID, now)

	if err := s.companyRepo.CreateCompanyWithSetup(ctx, company, membership, periods); err != nil {
		logger.Error("Failed to create company", slog.String("error", err.Error()), slog.String("code", code))
		return nil, err
	}

	logger.Info("Company created",
		slog.String("company_id", company.CompanyID),
		slog.String("code", code),
		slog.Int("periods", len(periods)),
	)
	return &company, nil
}

// GetCompany retrieves a company the caller belongs to.
func (s *companyService) GetCompany(ctx context.Context, caller domain.AuthUser, companyID string) (*domain.Company, error) {
	if err := requirePermission(caller, "companies", "read"); err != nil {
		return nil, err
	}
	if _, err := s.companyRepo.FindMembership(ctx, caller.UserID, companyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, err
	}
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

// ListCompanies retrieves the companies the caller belongs to.
func (s *companyService) ListCompanies(ctx context.Context, caller domain.AuthUser) ([]domain.Company, error) {
	if err := requirePermission(caller, "companies", "read"); err != nil {
		return nil, err
	}
	return s.companyRepo.ListCompaniesForUser(ctx, caller.UserID)
}

// UpdateCompany applies the patch fields of the request to the stored company.
func (s *companyService) UpdateCompany(ctx context.Context, caller domain.AuthUser, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	if err := requirePermission(caller, "companies", "update"); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.LegalName != nil {
		if strings.TrimSpace(*req.LegalName) == "" {
			return nil, fmt.Errorf("%w: legal name cannot be empty", apperrors.ErrValidation)
		}
		company.LegalName = *req.LegalName
	}
	if req.CommercialName != nil {
		company.CommercialName = req.CommercialName
	}
	if req.FiscalAddress != nil {
		company.FiscalAddress = *req.FiscalAddress
	}
	if req.Phone != nil {
		company.Phone = req.Phone
	}
	if req.Email != nil {
		company.Email = req.Email
	}
	if req.Activity != nil {
		company.Activity = req.Activity
	}
	if req.SecondaryCurrency != nil {
		company.SecondaryCurrency = req.SecondaryCurrency
	}
	if req.IVAAliquot != nil {
		company.IVAAliquot = *req.IVAAliquot
	}
	if req.ReducedIVAAliquot != nil {
		company.ReducedIVAAliquot = *req.ReducedIVAAliquot
	}
	if req.AdditionalIVAAliquot != nil {
		company.AdditionalIVAAliquot = *req.AdditionalIVAAliquot
	}
	if req.IGTFAliquot != nil {
		company.IGTFAliquot = *req.IGTFAliquot
	}
	if req.RetentionPercentage != nil {
		company.RetentionPercentage = *req.RetentionPercentage
	}
	if req.ISLRRetentionPercentage != nil {
		company.ISLRRetentionPercentage = *req.ISLRRetentionPercentage
	}
	if req.IsActive != nil {
		company.IsActive = *req.IsActive
	}

	now := time.Now().UTC()
	company.LastUpdatedAt = now
	company.LastUpdatedBy = caller.UserID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		return nil, err
	}
	return company, nil
}

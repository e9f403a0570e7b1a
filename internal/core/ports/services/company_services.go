package services

import (
	"context"

	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/dto"
)

// CompanySvcFacade defines operations on companies.
type CompanySvcFacade interface {
	// CreateCompany creates a company and bootstraps the creator's
	// membership plus the current year's twelve OPEN periods.
	CreateCompany(ctx context.Context, caller domain.AuthUser, req dto.CreateCompanyRequest) (*domain.Company, error)

	// GetCompany retrieves a company by id.
	GetCompany(ctx context.Context, caller domain.AuthUser, companyID string) (*domain.Company, error)

	// ListCompanies retrieves the companies the caller belongs to.
	ListCompanies(ctx context.Context, caller domain.AuthUser) ([]domain.Company, error)

	// UpdateCompany patches a company's mutable fields.
	UpdateCompany(ctx context.Context, caller domain.AuthUser, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error)
}

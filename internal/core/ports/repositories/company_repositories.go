package repositories

import (
	"context"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// CompanyReader defines read operations for companies and memberships.
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its unique identifier.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindCompanyByCode retrieves a company by its short code.
	FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error)

	// ListCompaniesForUser retrieves the companies the user has an active
	// membership in, ordered by code.
	ListCompaniesForUser(ctx context.Context, userID string) ([]domain.Company, error)

	// FindMembership retrieves the user's membership in a company.
	FindMembership(ctx context.Context, userID, companyID string) (*domain.UserCompany, error)
}

// CompanyWriter defines write operations for companies.
type CompanyWriter interface {
	// CreateCompanyWithSetup persists the company, the creator's membership
	// and the first year's periods in one database transaction.
	CreateCompanyWithSetup(ctx context.Context, company domain.Company, membership domain.UserCompany, periods []domain.Period) error

	// UpdateCompany updates an existing company's patchable fields.
	UpdateCompany(ctx context.Context, company domain.Company) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}

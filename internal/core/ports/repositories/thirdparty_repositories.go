package repositories

import (
	"context"

	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

// ThirdPartyFilter narrows a third party listing.
type ThirdPartyFilter struct {
	CompanyID      string
	ThirdPartyType *domain.ThirdPartyType
	// Search matches RIF, legal name and commercial name.
	Search     *string
	ActiveOnly bool
}

// ThirdPartyReader defines read operations for third parties.
type ThirdPartyReader interface {
	// FindThirdPartyByID retrieves a third party by its unique identifier.
	FindThirdPartyByID(ctx context.Context, companyID, thirdPartyID string) (*domain.ThirdParty, error)

	// FindThirdPartyByRIF retrieves a third party by RIF within the company.
	FindThirdPartyByRIF(ctx context.Context, companyID, rif string) (*domain.ThirdParty, error)

	// ListThirdParties retrieves one page of third parties matching the
	// filter, plus the total count of matches.
	ListThirdParties(ctx context.Context, filter ThirdPartyFilter, page pagination.Params) ([]domain.ThirdParty, int64, error)
}

// ThirdPartyWriter defines write operations for third parties.
type ThirdPartyWriter interface {
	// SaveThirdParty persists a new third party.
	SaveThirdParty(ctx context.Context, tp domain.ThirdParty) error

	// UpdateThirdParty updates an existing third party's patchable fields.
	UpdateThirdParty(ctx context.Context, tp domain.ThirdParty) error
}

// ThirdPartyRepositoryFacade combines all third-party repository interfaces.
type ThirdPartyRepositoryFacade interface {
	ThirdPartyReader
	ThirdPartyWriter
}

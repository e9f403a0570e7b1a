package services

import (
	"context"

	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/dto"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

// ThirdPartySvcFacade defines operations on third parties.
type ThirdPartySvcFacade interface {
	// CreateThirdParty registers a counterparty for the caller's company.
	CreateThirdParty(ctx context.Context, caller domain.AuthUser, req dto.CreateThirdPartyRequest) (*domain.ThirdParty, error)

	// GetThirdParty retrieves a third party by id.
	GetThirdParty(ctx context.Context, caller domain.AuthUser, thirdPartyID string) (*domain.ThirdParty, error)

	// ListThirdParties retrieves one page of third parties plus the total
	// count and the normalized page parameters.
	ListThirdParties(ctx context.Context, caller domain.AuthUser, params dto.ListThirdPartiesParams) ([]domain.ThirdParty, int64, pagination.Params, error)

	// UpdateThirdParty patches a third party's mutable fields.
	UpdateThirdParty(ctx context.Context, caller domain.AuthUser, thirdPartyID string, req dto.UpdateThirdPartyRequest) (*domain.ThirdParty, error)

	// DeactivateThirdParty soft-deletes a third party.
	DeactivateThirdParty(ctx context.Context, caller domain.AuthUser, thirdPartyID string) error
}

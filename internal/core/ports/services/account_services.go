package services

import (
	"context"

	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/dto"
)

// AccountSvcFacade defines operations on the chart of accounts.
type AccountSvcFacade interface {
	// CreateAccount creates a chart account, deriving its level from the parent.
	CreateAccount(ctx context.Context, caller domain.AuthUser, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccount retrieves an account by id.
	GetAccount(ctx context.Context, caller domain.AuthUser, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the company's chart.
	ListAccounts(ctx context.Context, caller domain.AuthUser, params dto.ListAccountsParams) ([]domain.Account, error)

	// UpdateAccount patches an account's mutable fields.
	UpdateAccount(ctx context.Context, caller domain.AuthUser, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeactivateAccount soft-deletes an account.
	DeactivateAccount(ctx context.Context, caller domain.AuthUser, accountID string) error
}

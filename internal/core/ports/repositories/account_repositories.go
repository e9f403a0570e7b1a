package repositories

import (
	"context"
	"time"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// AccountReader defines read operations for chart accounts.
type AccountReader interface {
	// FindAccountByID retrieves an account by its unique identifier.
	FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its code within the company.
	FindAccountByCode(ctx context.Context, companyID, accountCode string) (*domain.Account, error)

	// ListAccounts retrieves the company's chart ordered by account code.
	ListAccounts(ctx context.Context, companyID string, activeOnly bool) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart accounts.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's patchable fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, companyID, accountID, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

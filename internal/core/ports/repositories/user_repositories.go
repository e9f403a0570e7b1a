package repositories

import (
	"context"
	"time"

	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

// UserReader defines read operations for users, memberships and permissions.
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByLogin retrieves a user by username or email.
	FindUserByLogin(ctx context.Context, login string) (*domain.User, error)

	// ListUsers retrieves one page of users, plus the total count. Search
	// matches username, email and names.
	ListUsers(ctx context.Context, search *string, page pagination.Params) ([]domain.User, int64, error)

	// FindDefaultMembership retrieves the user's default active company
	// membership, falling back to the earliest active one.
	FindDefaultMembership(ctx context.Context, userID string) (*domain.UserCompany, error)

	// FindRolePermissions retrieves the permission codes granted to a role.
	FindRolePermissions(ctx context.Context, roleID string) ([]string, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's patchable fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdatePassword replaces the user's password hash.
	UpdatePassword(ctx context.Context, userID, passwordHash string, now time.Time) error

	// RecordLoginSuccess resets the failed attempt counter and stamps the
	// last login time.
	RecordLoginSuccess(ctx context.Context, userID string, at time.Time) error

	// RecordLoginFailure increments the failed attempt counter.
	RecordLoginFailure(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

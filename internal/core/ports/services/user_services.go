package services

import (
	"context"

	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/dto"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

// AuthSvc defines the authentication operations.
type AuthSvc interface {
	// Login verifies credentials and issues a signed access token scoped to
	// the user's default company.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

// UserSvcFacade defines management operations on users.
type UserSvcFacade interface {
	// CreateUser registers a new user.
	CreateUser(ctx context.Context, caller domain.AuthUser, req dto.CreateUserRequest) (*domain.User, error)

	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, caller domain.AuthUser, userID string) (*domain.User, error)

	// ListUsers retrieves one page of users plus the total count and the
	// normalized page parameters.
	ListUsers(ctx context.Context, caller domain.AuthUser, params dto.ListUsersParams) ([]domain.User, int64, pagination.Params, error)

	// UpdateUser patches a user's mutable fields.
	UpdateUser(ctx context.Context, caller domain.AuthUser, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// ChangePassword replaces the caller's own password after verifying the
	// current one.
	ChangePassword(ctx context.Context, caller domain.AuthUser, req dto.ChangePasswordRequest) error
}

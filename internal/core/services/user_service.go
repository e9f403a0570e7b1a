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
	"github.com/jgbarallobre/Contable/internal/platform/config"
	"github.com/jgbarallobre/Contable/internal/utils"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

// ErrInvalidCredentials is returned for any failed login, without revealing
// whether the user exists.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)

// authService implements password login and token issuance.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.AuthSvc {
	return &authService{userRepo: userRepo, cfg: cfg}
}

// Ensure authService implements the portssvc.AuthSvc interface
var _ portssvc.AuthSvc = (*authService)(nil)

// Login verifies the credentials, loads the default company membership and
// its role permissions, and issues a signed access token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	login := strings.TrimSpace(req.Username)
	user, err := s.userRepo.FindUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Login attempt for unknown user", slog.String("login", login))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive || user.IsBlocked {
		logger.Warn("Login attempt for inactive or blocked user", slog.String("user_id", user.UserID))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		if recErr := s.userRepo.RecordLoginFailure(ctx, user.UserID); recErr != nil {
			logger.Error("Failed to record login failure", slog.String("error", recErr.Error()))
		}
		logger.Warn("Login attempt with wrong password", slog.String("user_id", user.UserID))
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.userRepo.RecordLoginSuccess(ctx, user.UserID, now); err != nil {
		logger.Error("Failed to record login success", slog.String("error", err.Error()))
	}

	membership, err := s.userRepo.FindDefaultMembership(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user has no active company membership", apperrors.ErrForbidden)
		}
		return nil, err
	}

	permissions, err := s.userRepo.FindRolePermissions(ctx, membership.RoleID)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.UserID, user.Username, membership.CompanyID, membership.RoleID, permissions, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign access token", slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(500, "failed to issue access token", err)
	}

	logger.Info("User logged in",
		slog.String("user_id", user.UserID),
		slog.String("company_id", membership.CompanyID),
	)

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: now.Add(s.cfg.JWTExpiryDuration),
		User:      dto.ToUserResponse(user),
		CompanyID: membership.CompanyID,
		RoleID:    membership.RoleID,
	}, nil
}

// userService implements user management.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new user with a hashed password.
func (s *userService) CreateUser(ctx context.Context, caller domain.AuthUser, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(caller, "users", "create"); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	if _, err := s.userRepo.FindUserByLogin(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: username %s already taken", apperrors.ErrDuplicate, username)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:             uuid.NewString(),
		Username:           username,
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:       hash,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		IsActive:           true,
		MustChangePassword: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()), slog.String("username", username))
		return nil, err
	}

	logger.Info("User created", slog.String("user_id", user.UserID), slog.String("username", username))
	return &user, nil
}

// GetUser retrieves a user by id.
func (s *userService) GetUser(ctx context.Context, caller domain.AuthUser, userID string) (*domain.User, error) {
	// Users may always read their own record.
	if caller.UserID != userID {
		if err := requirePermission(caller, "users", "read"); err != nil {
			return nil, err
		}
	} else if caller.IsZero() {
		return nil, apperrors.ErrUnauthorized
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers retrieves one page of users.
func (s *userService) ListUsers(ctx context.Context, caller domain.AuthUser, params dto.ListUsersParams) ([]domain.User, int64, pagination.Params, error) {
	page := pagination.NewParams(params.Page, params.PageSize)

	if err := requirePermission(caller, "users", "read"); err != nil {
		return nil, 0, page, err
	}

	users, total, err := s.userRepo.ListUsers(ctx, params.Search, page)
	if err != nil {
		return nil, 0, page, err
	}
	return users, total, page, nil
}

// UpdateUser applies the patch fields of the request.
func (s *userService) UpdateUser(ctx context.Context, caller domain.AuthUser, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := requirePermission(caller, "users", "update"); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsBlocked != nil {
		user.IsBlocked = *req.IsBlocked
	}
	if req.MustChangePassword != nil {
		user.MustChangePassword = *req.MustChangePassword
	}

	now := time.Now().UTC()
	user.LastUpdatedAt = now
	user.LastUpdatedBy = caller.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the caller's own password after verifying the
// current one.
func (s *userService) ChangePassword(ctx context.Context, caller domain.AuthUser, req dto.ChangePasswordRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if caller.IsZero() {
		return apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, caller.UserID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.NewAppError(500, "failed to hash password", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.UserID, hash, time.Now().UTC()); err != nil {
		return err
	}

	logger.Info("Password changed", slog.String("user_id", user.UserID))
	return nil
}

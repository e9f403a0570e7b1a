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

// accountService implements the chart of accounts operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a chart account. The code must be unique within the
// company and the level is always parent.Level+1 (1 for roots), regardless of
// what the caller sends.
func (s *accountService) CreateAccount(ctx context.Context, caller domain.AuthUser, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(caller, "accounts", "create"); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.AccountCode)
	if code == "" || strings.TrimSpace(req.AccountName) == "" {
		return nil, fmt.Errorf("%w: account code and name are required", apperrors.ErrValidation)
	}

	if _, err := s.accountRepo.FindAccountByCode(ctx, caller.CompanyID, code); err == nil {
		return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, code)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	level := 1
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, caller.CompanyID, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account not found", apperrors.ErrValidation)
			}
			return nil, err
		}
		level = parent.Level + 1
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:        uuid.NewString(),
		CompanyID:        caller.CompanyID,
		AccountCode:      code,
		AccountName:      req.AccountName,
		ParentAccountID:  req.ParentAccountID,
		Level:            level,
		Nature:           req.Nature,
		AccountType:      req.AccountType,
		RequiresMovement: req.RequiresMovement,
		RequiresThird:    req.RequiresThird,
		RequiresCostCtr:  req.RequiresCostCtr,
		AllowsManual:     req.AllowsManual,
		Currency:         currency,
		IsCashFlowItem:   req.IsCashFlowItem,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_code", code))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("account_code", code), slog.Int("level", level))
	return &account, nil
}

// GetAccount retrieves an account by id.
func (s *accountService) GetAccount(ctx context.Context, caller domain.AuthUser, accountID string) (*domain.Account, error) {
	if err := requirePermission(caller, "accounts", "read"); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByID(ctx, caller.CompanyID, accountID)
}

// ListAccounts retrieves the company's chart.
func (s *accountService) ListAccounts(ctx context.Context, caller domain.AuthUser, params dto.ListAccountsParams) ([]domain.Account, error) {
	if err := requirePermission(caller, "accounts", "read"); err != nil {
		return nil, err
	}
	return s.accountRepo.ListAccounts(ctx, caller.CompanyID, params.ActiveOnly)
}

// UpdateAccount applies the patch fields of the request to the stored
// account. Code, parent and level are never patched.
func (s *accountService) UpdateAccount(ctx context.Context, caller domain.AuthUser, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := requirePermission(caller, "accounts", "update"); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, caller.CompanyID, accountID)
	if err != nil {
		return nil, err
	}

	if req.AccountName != nil {
		if strings.TrimSpace(*req.AccountName) == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.AccountName = *req.AccountName
	}
	if req.RequiresMovement != nil {
		account.RequiresMovement = *req.RequiresMovement
	}
	if req.RequiresThird != nil {
		account.RequiresThird = *req.RequiresThird
	}
	if req.RequiresCostCtr != nil {
		account.RequiresCostCtr = *req.RequiresCostCtr
	}
	if req.AllowsManual != nil {
		account.AllowsManual = *req.AllowsManual
	}
	if req.Currency != nil {
		account.Currency = *req.Currency
	}
	if req.IsCashFlowItem != nil {
		account.IsCashFlowItem = *req.IsCashFlowItem
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	now := time.Now().UTC()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = caller.UserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeactivateAccount soft-deletes an account.
func (s *accountService) DeactivateAccount(ctx context.Context, caller domain.AuthUser, accountID string) error {
	if err := requirePermission(caller, "accounts", "delete"); err != nil {
		return err
	}
	return s.accountRepo.DeactivateAccount(ctx, caller.CompanyID, accountID, caller.UserID, time.Now().UTC())
}

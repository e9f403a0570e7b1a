package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	"github.com/jgbarallobre/Contable/internal/models"
	"github.com/jgbarallobre/Contable/internal/utils/mapping"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `
	account_id, company_id, account_code, account_name, parent_account_id, level,
	nature, account_type, requires_movement, requires_third_party,
	requires_cost_center, allows_manual_entry, currency, is_cash_flow_item,
	is_active, created_at, created_by, last_updated_at, last_updated_by`

// isUniqueViolation reports whether the error is a postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.CompanyID,
		&m.AccountCode,
		&m.AccountName,
		&m.ParentAccountID,
		&m.Level,
		&m.Nature,
		&m.AccountType,
		&m.RequiresMovement,
		&m.RequiresThird,
		&m.RequiresCostCtr,
		&m.AllowsManual,
		&m.Currency,
		&m.IsCashFlowItem,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE account_id = $1 AND company_id = $2;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// FindAccountByCode retrieves an account by its code within the company.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, companyID, accountCode string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE company_id = $1 AND account_code = $2;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, companyID, accountCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by code "+accountCode, err)
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// ListAccounts retrieves the company's chart ordered by account code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string, activeOnly bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE company_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY account_code;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts for company "+companyID, err)
	}
	defer rows.Close()

	modelAccounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		modelAccounts = append(modelAccounts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// SaveAccount persists a new account. A duplicate (company, code) pair
// surfaces as ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO chart_of_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.CompanyID,
		m.AccountCode,
		m.AccountName,
		m.ParentAccountID,
		m.Level,
		m.Nature,
		m.AccountType,
		m.RequiresMovement,
		m.RequiresThird,
		m.RequiresCostCtr,
		m.AllowsManual,
		m.Currency,
		m.IsCashFlowItem,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert account "+m.AccountID, err)
	}
	return nil
}

// UpdateAccount updates the patchable fields of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE chart_of_accounts
		SET account_name = $1, requires_movement = $2, requires_third_party = $3,
		    requires_cost_center = $4, allows_manual_entry = $5, currency = $6,
		    is_cash_flow_item = $7, is_active = $8, last_updated_at = $9, last_updated_by = $10
		WHERE account_id = $11 AND company_id = $12;
	`
	ct, err := r.Pool.Exec(ctx, query,
		m.AccountName,
		m.RequiresMovement,
		m.RequiresThird,
		m.RequiresCostCtr,
		m.AllowsManual,
		m.Currency,
		m.IsCashFlowItem,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.AccountID,
		m.CompanyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account "+m.AccountID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateAccount marks an account as inactive.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, companyID, accountID, userID string, now time.Time) error {
	query := `
		UPDATE chart_of_accounts
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE account_id = $3 AND company_id = $4;
	`
	ct, err := r.Pool.Exec(ctx, query, now, userID, accountID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate account "+accountID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	"github.com/jgbarallobre/Contable/internal/models"
	"github.com/jgbarallobre/Contable/internal/utils/mapping"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `
	user_id, username, email, password_hash, first_name, last_name, phone,
	is_active, is_blocked, is_2fa_enabled, must_change_password, last_login_at,
	failed_login_attempts, created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.PasswordHash,
		&m.FirstName,
		&m.LastName,
		&m.Phone,
		&m.IsActive,
		&m.IsBlocked,
		&m.Is2FAEnabled,
		&m.MustChangePassword,
		&m.LastLoginAt,
		&m.FailedLoginAttempts,
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

// FindUserByID retrieves a user by its ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by ID "+userID, err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

// FindUserByLogin retrieves a user by username or email.
func (r *PgxUserRepository) FindUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by login", err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

// ListUsers retrieves one page of users plus the total count.
func (r *PgxUserRepository) ListUsers(ctx context.Context, search *string, page pagination.Params) ([]domain.User, int64, error) {
	whereClause := ""
	args := []interface{}{}
	if search != nil && *search != "" {
		args = append(args, "%"+*search+"%")
		whereClause = " WHERE username ILIKE $1 OR email ILIKE $1 OR first_name ILIKE $1 OR last_name ILIKE $1"
	}

	countQuery := "SELECT COUNT(*) FROM users" + whereClause + ";"
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count users", err)
	}

	listQuery := "SELECT " + userColumns + " FROM users" + whereClause +
		" ORDER BY username" +
		" LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2) + ";"
	args = append(args, page.Limit(), page.Offset())

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	modelUsers := []models.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan user row", err)
		}
		modelUsers = append(modelUsers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating user rows", err)
	}

	return mapping.ToDomainUserSlice(modelUsers), total, nil
}

// FindDefaultMembership retrieves the user's default active membership,
// falling back to the earliest active one.
func (r *PgxUserRepository) FindDefaultMembership(ctx context.Context, userID string) (*domain.UserCompany, error) {
	query := `
		SELECT user_company_id, user_id, company_id, role_id, is_default, is_active
		FROM user_companies
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY is_default DESC, user_company_id
		LIMIT 1;
	`
	var m models.UserCompany
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserCompanyID,
		&m.UserID,
		&m.CompanyID,
		&m.RoleID,
		&m.IsDefault,
		&m.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find default membership for user "+userID, err)
	}
	uc := mapping.ToDomainUserCompany(m)
	return &uc, nil
}

// FindRolePermissions retrieves the permission codes granted to a role.
func (r *PgxUserRepository) FindRolePermissions(ctx context.Context, roleID string) ([]string, error) {
	query := `
		SELECT p.code
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.permission_id
		WHERE rp.role_id = $1
		ORDER BY p.code;
	`
	rows, err := r.Pool.Query(ctx, query, roleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query permissions for role "+roleID, err)
	}
	defer rows.Close()

	permissions := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan permission row", err)
		}
		permissions = append(permissions, code)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating permission rows", err)
	}

	return permissions, nil
}

// SaveUser persists a new user. A duplicate username or email surfaces as
// ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.PasswordHash,
		m.FirstName,
		m.LastName,
		m.Phone,
		m.IsActive,
		m.IsBlocked,
		m.Is2FAEnabled,
		m.MustChangePassword,
		m.LastLoginAt,
		m.FailedLoginAttempts,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert user "+m.UserID, err)
	}
	return nil
}

// UpdateUser updates the patchable fields of a user.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET email = $1, first_name = $2, last_name = $3, phone = $4,
		    is_active = $5, is_blocked = $6, must_change_password = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE user_id = $10;
	`
	ct, err := r.Pool.Exec(ctx, query,
		m.Email,
		m.FirstName,
		m.LastName,
		m.Phone,
		m.IsActive,
		m.IsBlocked,
		m.MustChangePassword,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update user "+m.UserID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the user's password hash.
func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string, now time.Time) error {
	query := `
		UPDATE users
		SET password_hash = $1, must_change_password = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $3;
	`
	ct, err := r.Pool.Exec(ctx, query, passwordHash, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update password for user "+userID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RecordLoginSuccess resets the failed attempt counter and stamps last login.
func (r *PgxUserRepository) RecordLoginSuccess(ctx context.Context, userID string, at time.Time) error {
	query := `
		UPDATE users
		SET failed_login_attempts = 0, last_login_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE user_id = $2;
	`
	if _, err := r.Pool.Exec(ctx, query, at, userID); err != nil {
		return apperrors.NewAppError(500, "failed to record login success for user "+userID, err)
	}
	return nil
}

// RecordLoginFailure increments the failed attempt counter.
func (r *PgxUserRepository) RecordLoginFailure(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1
		WHERE user_id = $1;
	`
	if _, err := r.Pool.Exec(ctx, query, userID); err != nil {
		return apperrors.NewAppError(500, "failed to record login failure for user "+userID, err)
	}
	return nil
}

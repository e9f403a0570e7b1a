package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	"github.com/jgbarallobre/Contable/internal/models"
	"github.com/jgbarallobre/Contable/internal/utils/mapping"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companyColumns = `
	company_id, code, legal_name, commercial_name, rif, fiscal_address, phone,
	email, activity, functional_currency, secondary_currency, iva_aliquot,
	reduced_iva_aliquot, additional_iva_aliquot, igtf_aliquot,
	retention_percentage, islr_retention_percentage, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCompany(row pgx.Row) (*models.Company, error) {
	var m models.Company
	err := row.Scan(
		&m.CompanyID,
		&m.Code,
		&m.LegalName,
		&m.CommercialName,
		&m.RIF,
		&m.FiscalAddress,
		&m.Phone,
		&m.Email,
		&m.Activity,
		&m.FunctionalCurrency,
		&m.SecondaryCurrency,
		&m.IVAAliquot,
		&m.ReducedIVAAliquot,
		&m.AdditionalIVAAliquot,
		&m.IGTFAliquot,
		&m.RetentionPercentage,
		&m.ISLRRetentionPercentage,
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

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`
	m, err := scanCompany(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find company by ID "+companyID, err)
	}
	c := mapping.ToDomainCompany(*m)
	return &c, nil
}

// FindCompanyByCode retrieves a company by its short code.
func (r *PgxCompanyRepository) FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE code = $1;`
	m, err := scanCompany(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find company by code "+code, err)
	}
	c := mapping.ToDomainCompany(*m)
	return &c, nil
}

// ListCompaniesForUser retrieves the companies the user actively belongs to.
func (r *PgxCompanyRepository) ListCompaniesForUser(ctx context.Context, userID string) ([]domain.Company, error) {
	query := `
		SELECT c.company_id, c.code, c.legal_name, c.commercial_name, c.rif,
		       c.fiscal_address, c.phone, c.email, c.activity,
		       c.functional_currency, c.secondary_currency, c.iva_aliquot,
		       c.reduced_iva_aliquot, c.additional_iva_aliquot, c.igtf_aliquot,
		       c.retention_percentage, c.islr_retention_percentage, c.is_active,
		       c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
		FROM companies c
		JOIN user_companies uc ON uc.company_id = c.company_id
		WHERE uc.user_id = $1 AND uc.is_active = TRUE
		ORDER BY c.code;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies for user "+userID, err)
	}
	defer rows.Close()

	modelCompanies := []models.Company{}
	for rows.Next() {
		m, err := scanCompany(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan company row", err)
		}
		modelCompanies = append(modelCompanies, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating company rows", err)
	}

	return mapping.ToDomainCompanySlice(modelCompanies), nil
}

// FindMembership retrieves the user's membership in a company.
func (r *PgxCompanyRepository) FindMembership(ctx context.Context, userID, companyID string) (*domain.UserCompany, error) {
	query := `
		SELECT user_company_id, user_id, company_id, role_id, is_default, is_active
		FROM user_companies
		WHERE user_id = $1 AND company_id = $2;
	`
	var m models.UserCompany
	err := r.Pool.QueryRow(ctx, query, userID, companyID).Scan(
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
		return nil, apperrors.NewAppError(500, "failed to find membership for user "+userID, err)
	}
	uc := mapping.ToDomainUserCompany(m)
	return &uc, nil
}

// CreateCompanyWithSetup persists the company, the creator's membership and
// the first year's periods in one database transaction.
func (r *PgxCompanyRepository) CreateCompanyWithSetup(ctx context.Context, company domain.Company, membership domain.UserCompany, periods []domain.Period) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelCompany(company)
	companyQuery := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err = tx.Exec(ctx, companyQuery,
		m.CompanyID,
		m.Code,
		m.LegalName,
		m.CommercialName,
		m.RIF,
		m.FiscalAddress,
		m.Phone,
		m.Email,
		m.Activity,
		m.FunctionalCurrency,
		m.SecondaryCurrency,
		m.IVAAliquot,
		m.ReducedIVAAliquot,
		m.AdditionalIVAAliquot,
		m.IGTFAliquot,
		m.RetentionPercentage,
		m.ISLRRetentionPercentage,
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
		return apperrors.NewAppError(500, "failed to insert company "+m.CompanyID, err)
	}

	mm := mapping.ToModelUserCompany(membership)
	membershipQuery := `
		INSERT INTO user_companies (user_company_id, user_id, company_id, role_id, is_default, is_active)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, membershipQuery,
		mm.UserCompanyID,
		mm.UserID,
		mm.CompanyID,
		mm.RoleID,
		mm.IsDefault,
		mm.IsActive,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert membership for company "+m.CompanyID, err)
	}

	if err := insertPeriodsTx(ctx, tx, periods); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateCompany updates the patchable fields of a company.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		UPDATE companies
		SET legal_name = $1, commercial_name = $2, fiscal_address = $3, phone = $4,
		    email = $5, activity = $6, secondary_currency = $7, iva_aliquot = $8,
		    reduced_iva_aliquot = $9, additional_iva_aliquot = $10, igtf_aliquot = $11,
		    retention_percentage = $12, islr_retention_percentage = $13, is_active = $14,
		    last_updated_at = $15, last_updated_by = $16
		WHERE company_id = $17;
	`
	ct, err := r.Pool.Exec(ctx, query,
		m.LegalName,
		m.CommercialName,
		m.FiscalAddress,
		m.Phone,
		m.Email,
		m.Activity,
		m.SecondaryCurrency,
		m.IVAAliquot,
		m.ReducedIVAAliquot,
		m.AdditionalIVAAliquot,
		m.IGTFAliquot,
		m.RetentionPercentage,
		m.ISLRRetentionPercentage,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.CompanyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update company "+m.CompanyID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

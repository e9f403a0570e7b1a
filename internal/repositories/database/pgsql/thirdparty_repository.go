package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	"github.com/jgbarallobre/Contable/internal/models"
	"github.com/jgbarallobre/Contable/internal/utils/mapping"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

type PgxThirdPartyRepository struct {
	BaseRepository
}

// newPgxThirdPartyRepository creates a new repository for third party data.
func newPgxThirdPartyRepository(pool *pgxpool.Pool) portsrepo.ThirdPartyRepositoryFacade {
	return &PgxThirdPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxThirdPartyRepository implements portsrepo.ThirdPartyRepositoryFacade
var _ portsrepo.ThirdPartyRepositoryFacade = (*PgxThirdPartyRepository)(nil)

const thirdPartyColumns = `
	third_party_id, company_id, third_party_type, rif, legal_name,
	commercial_name, fiscal_address, phone, email, contact_person, tax_category,
	is_withholding_agent, iva_applicable, islr_applicable, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanThirdParty(row pgx.Row) (*models.ThirdParty, error) {
	var m models.ThirdParty
	err := row.Scan(
		&m.ThirdPartyID,
		&m.CompanyID,
		&m.ThirdPartyType,
		&m.RIF,
		&m.LegalName,
		&m.CommercialName,
		&m.FiscalAddress,
		&m.Phone,
		&m.Email,
		&m.ContactPerson,
		&m.TaxCategory,
		&m.IsWithholdingAgent,
		&m.IVAApplicable,
		&m.ISLRApplicable,
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

// FindThirdPartyByID retrieves a third party by its ID.
func (r *PgxThirdPartyRepository) FindThirdPartyByID(ctx context.Context, companyID, thirdPartyID string) (*domain.ThirdParty, error) {
	query := `SELECT ` + thirdPartyColumns + ` FROM third_parties WHERE third_party_id = $1 AND company_id = $2;`
	m, err := scanThirdParty(r.Pool.QueryRow(ctx, query, thirdPartyID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find third party by ID "+thirdPartyID, err)
	}
	tp := mapping.ToDomainThirdParty(*m)
	return &tp, nil
}

// FindThirdPartyByRIF retrieves a third party by RIF within the company.
func (r *PgxThirdPartyRepository) FindThirdPartyByRIF(ctx context.Context, companyID, rif string) (*domain.ThirdParty, error) {
	query := `SELECT ` + thirdPartyColumns + ` FROM third_parties WHERE company_id = $1 AND rif = $2;`
	m, err := scanThirdParty(r.Pool.QueryRow(ctx, query, companyID, rif))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find third party by RIF "+rif, err)
	}
	tp := mapping.ToDomainThirdParty(*m)
	return &tp, nil
}

// ListThirdParties retrieves one page of third parties matching the filter.
func (r *PgxThirdPartyRepository) ListThirdParties(ctx context.Context, filter portsrepo.ThirdPartyFilter, page pagination.Params) ([]domain.ThirdParty, int64, error) {
	whereClause := " WHERE company_id = $1"
	args := []interface{}{filter.CompanyID}

	if filter.ThirdPartyType != nil {
		args = append(args, string(*filter.ThirdPartyType))
		whereClause += " AND third_party_type = $" + strconv.Itoa(len(args))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		p := "$" + strconv.Itoa(len(args))
		whereClause += " AND (rif ILIKE " + p + " OR legal_name ILIKE " + p + " OR commercial_name ILIKE " + p + ")"
	}
	if filter.ActiveOnly {
		whereClause += " AND is_active = TRUE"
	}

	countQuery := "SELECT COUNT(*) FROM third_parties" + whereClause + ";"
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count third parties for company "+filter.CompanyID, err)
	}

	listQuery := "SELECT " + thirdPartyColumns + " FROM third_parties" + whereClause +
		" ORDER BY legal_name" +
		" LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2) + ";"
	args = append(args, page.Limit(), page.Offset())

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query third parties for company "+filter.CompanyID, err)
	}
	defer rows.Close()

	modelParties := []models.ThirdParty{}
	for rows.Next() {
		m, err := scanThirdParty(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan third party row", err)
		}
		modelParties = append(modelParties, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating third party rows", err)
	}

	return mapping.ToDomainThirdPartySlice(modelParties), total, nil
}

// SaveThirdParty persists a new third party. A duplicate (company, RIF) pair
// surfaces as ErrDuplicate.
func (r *PgxThirdPartyRepository) SaveThirdParty(ctx context.Context, tp domain.ThirdParty) error {
	m := mapping.ToModelThirdParty(tp)
	query := `
		INSERT INTO third_parties (` + thirdPartyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ThirdPartyID,
		m.CompanyID,
		m.ThirdPartyType,
		m.RIF,
		m.LegalName,
		m.CommercialName,
		m.FiscalAddress,
		m.Phone,
		m.Email,
		m.ContactPerson,
		m.TaxCategory,
		m.IsWithholdingAgent,
		m.IVAApplicable,
		m.ISLRApplicable,
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
		return apperrors.NewAppError(500, "failed to insert third party "+m.ThirdPartyID, err)
	}
	return nil
}

// UpdateThirdParty updates the patchable fields of a third party.
func (r *PgxThirdPartyRepository) UpdateThirdParty(ctx context.Context, tp domain.ThirdParty) error {
	m := mapping.ToModelThirdParty(tp)
	query := `
		UPDATE third_parties
		SET legal_name = $1, commercial_name = $2, fiscal_address = $3, phone = $4,
		    email = $5, contact_person = $6, tax_category = $7,
		    is_withholding_agent = $8, iva_applicable = $9, islr_applicable = $10,
		    is_active = $11, last_updated_at = $12, last_updated_by = $13
		WHERE third_party_id = $14 AND company_id = $15;
	`
	ct, err := r.Pool.Exec(ctx, query,
		m.LegalName,
		m.CommercialName,
		m.FiscalAddress,
		m.Phone,
		m.Email,
		m.ContactPerson,
		m.TaxCategory,
		m.IsWithholdingAgent,
		m.IVAApplicable,
		m.ISLRApplicable,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ThirdPartyID,
		m.CompanyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update third party "+m.ThirdPartyID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

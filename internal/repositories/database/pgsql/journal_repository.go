package pgsql

import (
	"context"
	"errors"
	"fmt"
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

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalHeaderColumns = `
	entry_id, company_id, period_id, entry_type, entry_number, entry_date,
	description, reference, status, total_debit, total_credit, currency,
	exchange_rate, approved_by, approved_at, annulled_by, annulled_at,
	annulment_reason, reversed_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

// nextEntryNumber draws the next number for the (company, document type)
// sequence on the given transaction. The ON CONFLICT update takes a row lock,
// so concurrent draws for the same sequence serialize and can never return
// the same value.
func (r *PgxJournalRepository) nextEntryNumber(ctx context.Context, tx pgx.Tx, companyID string, entryType string) (string, error) {
	query := `
		INSERT INTO document_sequences (company_id, document_type, current_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, document_type)
		DO UPDATE SET current_number = document_sequences.current_number + 1
		RETURNING current_number;
	`
	var current int64
	if err := tx.QueryRow(ctx, query, companyID, entryType).Scan(&current); err != nil {
		return "", apperrors.NewAppError(500, "failed to draw sequence number for company "+companyID, err)
	}
	return fmt.Sprintf("%06d", current), nil
}

// SaveEntry persists the header and its lines in one database transaction.
// When the entry carries no number yet, one is drawn from the sequence inside
// the same transaction and written back onto the entry.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry *domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if entry.EntryNumber == "" {
		number, err := r.nextEntryNumber(ctx, tx, entry.CompanyID, string(entry.EntryType))
		if err != nil {
			return err
		}
		entry.EntryNumber = number
	}

	modelEntry := mapping.ToModelJournalEntry(*entry)
	headerQuery := `
		INSERT INTO journal_entry_headers (` + journalHeaderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelEntry.EntryID,
		modelEntry.CompanyID,
		modelEntry.PeriodID,
		modelEntry.EntryType,
		modelEntry.EntryNumber,
		modelEntry.EntryDate,
		modelEntry.Description,
		modelEntry.Reference,
		modelEntry.Status,
		modelEntry.TotalDebit,
		modelEntry.TotalCredit,
		modelEntry.Currency,
		modelEntry.ExchangeRate,
		modelEntry.ApprovedBy,
		modelEntry.ApprovedAt,
		modelEntry.AnnulledBy,
		modelEntry.AnnulledAt,
		modelEntry.AnnulmentReason,
		modelEntry.ReversedEntryID,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert entry "+modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (
			line_id, entry_id, line_number, account_id, third_party_id,
			cost_center_id, description, debit, credit, currency, exchange_rate,
			base_amount, reference, tax_base, iva_amount, igtf_amount,
			is_igtf_applicable, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	for _, line := range entry.Lines {
		modelLine := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.LineNumber,
			modelLine.AccountID,
			modelLine.ThirdPartyID,
			modelLine.CostCenterID,
			modelLine.Description,
			modelLine.Debit,
			modelLine.Credit,
			modelLine.Currency,
			modelLine.ExchangeRate,
			modelLine.BaseAmount,
			modelLine.Reference,
			modelLine.TaxBase,
			modelLine.IVAAmount,
			modelLine.IGTFAmount,
			modelLine.IsIGTFApplicable,
			modelLine.CreatedAt,
			modelLine.CreatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for entry "+modelEntry.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

func scanJournalEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.PeriodID,
		&m.EntryType,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.Reference,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.Currency,
		&m.ExchangeRate,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.AnnulledBy,
		&m.AnnulledAt,
		&m.AnnulmentReason,
		&m.ReversedEntryID,
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

// FindEntryByID retrieves an entry header with its lines ordered by line number.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	headerQuery := `
		SELECT ` + journalHeaderColumns + `
		FROM journal_entry_headers
		WHERE entry_id = $1 AND company_id = $2;
	`
	modelEntry, err := scanJournalEntry(r.Pool.QueryRow(ctx, headerQuery, entryID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}

	lineQuery := `
		SELECT line_id, entry_id, line_number, account_id, third_party_id,
		       cost_center_id, description, debit, credit, currency, exchange_rate,
		       base_amount, reference, tax_base, iva_amount, igtf_amount,
		       is_igtf_applicable, created_at, created_by
		FROM journal_entry_lines
		WHERE entry_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, lineQuery, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	modelLines := []models.JournalLine{}
	for rows.Next() {
		var l models.JournalLine
		err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.LineNumber,
			&l.AccountID,
			&l.ThirdPartyID,
			&l.CostCenterID,
			&l.Description,
			&l.Debit,
			&l.Credit,
			&l.Currency,
			&l.ExchangeRate,
			&l.BaseAmount,
			&l.Reference,
			&l.TaxBase,
			&l.IVAAmount,
			&l.IGTFAmount,
			&l.IsIGTFApplicable,
			&l.CreatedAt,
			&l.CreatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		modelLines = append(modelLines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}

	domainEntry := mapping.ToDomainJournalEntry(*modelEntry)
	domainEntry.Lines = mapping.ToDomainJournalLineSlice(modelLines)
	return &domainEntry, nil
}

// ListEntries retrieves one page of entry headers matching the filter, plus
// the total count of matches. Lines are not loaded for listings.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter portsrepo.JournalEntryFilter, page pagination.Params) ([]domain.JournalEntry, int64, error) {
	whereClause := " WHERE company_id = $1"
	args := []interface{}{filter.CompanyID}

	addCondition := func(condition string, value interface{}) {
		args = append(args, value)
		whereClause += " AND " + condition + "$" + strconv.Itoa(len(args))
	}

	if filter.PeriodID != nil {
		addCondition("period_id = ", *filter.PeriodID)
	}
	if filter.Status != nil {
		addCondition("status = ", string(*filter.Status))
	}
	if filter.EntryType != nil {
		addCondition("entry_type = ", string(*filter.EntryType))
	}
	if filter.DateFrom != nil {
		addCondition("entry_date >= ", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addCondition("entry_date <= ", *filter.DateTo)
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		p := "$" + strconv.Itoa(len(args))
		whereClause += " AND (entry_number ILIKE " + p + " OR description ILIKE " + p + " OR reference ILIKE " + p + ")"
	}

	countQuery := "SELECT COUNT(*) FROM journal_entry_headers" + whereClause + ";"
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count entries for company "+filter.CompanyID, err)
	}

	listQuery := "SELECT " + journalHeaderColumns + " FROM journal_entry_headers" + whereClause +
		" ORDER BY entry_date DESC, entry_number DESC" +
		" LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2) + ";"
	args = append(args, page.Limit(), page.Offset())

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query entries for company "+filter.CompanyID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		modelEntry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(*modelEntry))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating entry rows", err)
	}

	return entries, total, nil
}

// ApproveEntry stamps an entry APPROVED. The WHERE guard on DRAFT status
// makes the transition race-safe; a lost race surfaces as ErrConflict.
func (r *PgxJournalRepository) ApproveEntry(ctx context.Context, companyID, entryID, approverID string, approvedAt time.Time) error {
	query := `
		UPDATE journal_entry_headers
		SET status = $1, approved_by = $2, approved_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE entry_id = $4 AND company_id = $5 AND status = $6;
	`
	ct, err := r.Pool.Exec(ctx, query, models.EntryApproved, approverID, approvedAt, entryID, companyID, models.EntryDraft)
	if err != nil {
		return apperrors.NewAppError(500, "failed to approve entry "+entryID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// AnnulEntry stamps an entry ANNULED with the reason. Guarded on APPROVED
// status; lines are left untouched.
func (r *PgxJournalRepository) AnnulEntry(ctx context.Context, companyID, entryID, annullerID, reason string, annulledAt time.Time) error {
	query := `
		UPDATE journal_entry_headers
		SET status = $1, annulled_by = $2, annulled_at = $3, annulment_reason = $4, last_updated_at = $3, last_updated_by = $2
		WHERE entry_id = $5 AND company_id = $6 AND status = $7;
	`
	ct, err := r.Pool.Exec(ctx, query, models.EntryAnnuled, annullerID, annulledAt, reason, entryID, companyID, models.EntryApproved)
	if err != nil {
		return apperrors.NewAppError(500, "failed to annul entry "+entryID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

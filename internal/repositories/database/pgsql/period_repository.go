package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	"github.com/jgbarallobre/Contable/internal/models"
	"github.com/jgbarallobre/Contable/internal/utils/mapping"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for accounting period data.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPeriodRepository implements portsrepo.PeriodRepositoryFacade
var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const periodColumns = `
	period_id, company_id, year, month, start_date, end_date, status,
	closed_by, closed_at, closing_note, reopened_by, reopened_at, reopening_note,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (*models.Period, error) {
	var m models.Period
	err := row.Scan(
		&m.PeriodID,
		&m.CompanyID,
		&m.Year,
		&m.Month,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.ClosedBy,
		&m.ClosedAt,
		&m.ClosingNote,
		&m.ReopenedBy,
		&m.ReopenedAt,
		&m.ReopeningNote,
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

// FindPeriodByID retrieves a period by its ID.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, companyID, periodID string) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE period_id = $1 AND company_id = $2;`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find period by ID "+periodID, err)
	}
	p := mapping.ToDomainPeriod(*m)
	return &p, nil
}

// FindOpenPeriod retrieves the earliest OPEN period of the company.
func (r *PgxPeriodRepository) FindOpenPeriod(ctx context.Context, companyID string) (*domain.Period, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM periods
		WHERE company_id = $1 AND status = $2
		ORDER BY year, month
		LIMIT 1;
	`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, companyID, models.PeriodOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoOpenPeriod
		}
		return nil, apperrors.NewAppError(500, "failed to find open period for company "+companyID, err)
	}
	p := mapping.ToDomainPeriod(*m)
	return &p, nil
}

// FindPeriodByYearMonth retrieves the period of one calendar slot.
func (r *PgxPeriodRepository) FindPeriodByYearMonth(ctx context.Context, companyID string, year, month int) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE company_id = $1 AND year = $2 AND month = $3;`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, companyID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find period by year/month for company "+companyID, err)
	}
	p := mapping.ToDomainPeriod(*m)
	return &p, nil
}

// ListPeriods retrieves the company's periods ordered by year then month.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, companyID string, year *int, status *domain.PeriodStatus) ([]domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE company_id = $1`
	args := []interface{}{companyID}
	if year != nil {
		args = append(args, *year)
		query += ` AND year = $2`
	}
	if status != nil {
		args = append(args, string(*status))
		if year != nil {
			query += ` AND status = $3`
		} else {
			query += ` AND status = $2`
		}
	}
	query += ` ORDER BY year, month;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query periods for company "+companyID, err)
	}
	defer rows.Close()

	modelPeriods := []models.Period{}
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan period row", err)
		}
		modelPeriods = append(modelPeriods, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating period rows", err)
	}

	return mapping.ToDomainPeriodSlice(modelPeriods), nil
}

// SumApprovedTotals sums header totals over the APPROVED entries of a period.
func (r *PgxPeriodRepository) SumApprovedTotals(ctx context.Context, periodID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_debit), 0), COALESCE(SUM(total_credit), 0)
		FROM journal_entry_headers
		WHERE period_id = $1 AND status = $2;
	`
	var totalDebit, totalCredit decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, periodID, models.EntryApproved).Scan(&totalDebit, &totalCredit); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to sum approved totals for period "+periodID, err)
	}
	return totalDebit, totalCredit, nil
}

// CreatePeriods persists a batch of periods in one transaction.
func (r *PgxPeriodRepository) CreatePeriods(ctx context.Context, periods []domain.Period) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertPeriodsTx(ctx, tx, periods); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// insertPeriodsTx queues the period inserts on an existing transaction. It is
// shared with the company bootstrap.
func insertPeriodsTx(ctx context.Context, tx pgx.Tx, periods []domain.Period) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	for _, p := range periods {
		m := mapping.ToModelPeriod(p)
		batch.Queue(query,
			m.PeriodID,
			m.CompanyID,
			m.Year,
			m.Month,
			m.StartDate,
			m.EndDate,
			m.Status,
			m.ClosedBy,
			m.ClosedAt,
			m.ClosingNote,
			m.ReopenedBy,
			m.ReopenedAt,
			m.ReopeningNote,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert periods", err)
	}
	return nil
}

// ClosePeriod stamps a period CLOSED. Guarded on OPEN status.
func (r *PgxPeriodRepository) ClosePeriod(ctx context.Context, periodID, closerID string, note *string, closedAt time.Time) error {
	query := `
		UPDATE periods
		SET status = $1, closed_by = $2, closed_at = $3, closing_note = $4, last_updated_at = $3, last_updated_by = $2
		WHERE period_id = $5 AND status = $6;
	`
	ct, err := r.Pool.Exec(ctx, query, models.PeriodClosed, closerID, closedAt, note, periodID, models.PeriodOpen)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close period "+periodID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// ReopenPeriod stamps a period back to OPEN. Guarded on CLOSED status.
func (r *PgxPeriodRepository) ReopenPeriod(ctx context.Context, periodID, reopenerID string, note *string, reopenedAt time.Time) error {
	query := `
		UPDATE periods
		SET status = $1, reopened_by = $2, reopened_at = $3, reopening_note = $4, last_updated_at = $3, last_updated_by = $2
		WHERE period_id = $5 AND status = $6;
	`
	ct, err := r.Pool.Exec(ctx, query, models.PeriodOpen, reopenerID, reopenedAt, note, periodID, models.PeriodClosed)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reopen period "+periodID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	"github.com/jgbarallobre/Contable/internal/models"
)

type ReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new read-only repository for report data.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure ReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

// GetTrialBalanceData aggregates line amounts per account over the APPROVED
// entries of one period.
func (r *ReportingRepository) GetTrialBalanceData(ctx context.Context, companyID, periodID string) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.account_code, a.account_name,
		       COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_entry_lines l
		JOIN journal_entry_headers h ON h.entry_id = l.entry_id
		JOIN chart_of_accounts a ON a.account_id = l.account_id
		WHERE h.company_id = $1 AND h.period_id = $2 AND h.status = $3
		GROUP BY a.account_id, a.account_code, a.account_name
		ORDER BY a.account_code;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, periodID, models.EntryApproved)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance for period "+periodID, err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName, &row.TotalDebit, &row.TotalCredit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}

	return result, nil
}

// GetGeneralLedgerData retrieves the chronological approved movements of one
// account over a date range.
func (r *ReportingRepository) GetGeneralLedgerData(ctx context.Context, companyID, accountID string, from, to time.Time) ([]domain.GeneralLedgerRow, error) {
	query := `
		SELECT h.entry_id, h.entry_number, h.entry_date, h.description, l.debit, l.credit
		FROM journal_entry_lines l
		JOIN journal_entry_headers h ON h.entry_id = l.entry_id
		WHERE h.company_id = $1 AND l.account_id = $2 AND h.status = $3
		  AND h.entry_date >= $4 AND h.entry_date <= $5
		ORDER BY h.entry_date, h.entry_number, l.line_number;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, accountID, models.EntryApproved, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query general ledger for account "+accountID, err)
	}
	defer rows.Close()

	result := []domain.GeneralLedgerRow{}
	for rows.Next() {
		var row domain.GeneralLedgerRow
		if err := rows.Scan(&row.EntryID, &row.EntryNumber, &row.EntryDate, &row.Description, &row.Debit, &row.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan general ledger row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating general ledger rows", err)
	}

	return result, nil
}

package repositories

import (
	"context"
	"time"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// ReportingRepository defines read-only operations for financial reports.
// Only APPROVED entries contribute to report data.
type ReportingRepository interface {
	// GetTrialBalanceData retrieves per-account debit/credit sums for one period.
	GetTrialBalanceData(ctx context.Context, companyID, periodID string) ([]domain.TrialBalanceRow, error)

	// GetGeneralLedgerData retrieves the chronological movements of one
	// account over a date range.
	GetGeneralLedgerData(ctx context.Context, companyID, accountID string, from, to time.Time) ([]domain.GeneralLedgerRow, error)
}

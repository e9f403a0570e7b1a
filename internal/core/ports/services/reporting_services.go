package services

import (
	"context"
	"time"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// ReportingSvc defines the read-only report operations.
type ReportingSvc interface {
	// TrialBalance builds the per-account debit/credit aggregate of one period.
	TrialBalance(ctx context.Context, caller domain.AuthUser, periodID string) ([]domain.TrialBalanceRow, error)

	// GeneralLedger builds the chronological movements of one account over a
	// date range.
	GeneralLedger(ctx context.Context, caller domain.AuthUser, accountID string, from, to time.Time) ([]domain.GeneralLedgerRow, error)
}

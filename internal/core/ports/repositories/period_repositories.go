package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// PeriodReader defines read operations for accounting periods.
type PeriodReader interface {
	// FindPeriodByID retrieves a period by its unique identifier.
	FindPeriodByID(ctx context.Context, companyID, periodID string) (*domain.Period, error)

	// FindOpenPeriod retrieves the earliest OPEN period of the company, or
	// ErrNoOpenPeriod when none is open.
	FindOpenPeriod(ctx context.Context, companyID string) (*domain.Period, error)

	// FindPeriodByYearMonth retrieves the period for the given calendar slot,
	// or ErrNotFound when the year was never created.
	FindPeriodByYearMonth(ctx context.Context, companyID string, year, month int) (*domain.Period, error)

	// ListPeriods retrieves the company's periods, optionally narrowed by
	// year and status, ordered by year then month.
	ListPeriods(ctx context.Context, companyID string, year *int, status *domain.PeriodStatus) ([]domain.Period, error)

	// SumApprovedTotals sums TotalDebit and TotalCredit over the APPROVED
	// entries of a period.
	SumApprovedTotals(ctx context.Context, periodID string) (totalDebit, totalCredit decimal.Decimal, err error)
}

// PeriodWriter defines write operations for accounting periods.
type PeriodWriter interface {
	// CreatePeriods persists a batch of periods in one transaction.
	CreatePeriods(ctx context.Context, periods []domain.Period) error

	// ClosePeriod stamps a period CLOSED. The update is guarded on OPEN
	// status; zero rows affected surfaces as ErrConflict.
	ClosePeriod(ctx context.Context, periodID, closerID string, note *string, closedAt time.Time) error

	// ReopenPeriod stamps a period back to OPEN. The update is guarded on
	// CLOSED status; zero rows affected surfaces as ErrConflict.
	ReopenPeriod(ctx context.Context, periodID, reopenerID string, note *string, reopenedAt time.Time) error
}

// PeriodRepositoryFacade combines all period-related repository interfaces.
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}

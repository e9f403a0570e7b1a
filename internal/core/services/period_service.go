package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
	"github.com/jgbarallobre/Contable/internal/dto"
	"github.com/jgbarallobre/Contable/internal/middleware"
)

// periodService implements the period registry: open/close/reopen gating and
// the yearly bootstrap.
type periodService struct {
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewPeriodService creates a new period service.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: periodRepo}
}

// Ensure periodService implements the portssvc.PeriodSvcFacade interface
var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// newYearPeriods builds the twelve OPEN monthly periods of a calendar year.
// It is shared with the company bootstrap.
func newYearPeriods(companyID string, year int, creatorID string, now time.Time) []domain.Period {
	periods := make([]domain.Period, 12)
	for month := 1; month <= 12; month++ {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		periods[month-1] = domain.Period{
			PeriodID:  uuid.NewString(),
			CompanyID: companyID,
			Year:      year,
			Month:     month,
			StartDate: start,
			EndDate:   end,
			Status:    domain.PeriodOpen,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorID,
			},
		}
	}
	return periods
}

// GetPeriod retrieves a period by id.
func (s *periodService) GetPeriod(ctx context.Context, caller domain.AuthUser, periodID string) (*domain.Period, error) {
	if err := requirePermission(caller, "periods", "read"); err != nil {
		return nil, err
	}
	return s.periodRepo.FindPeriodByID(ctx, caller.CompanyID, periodID)
}

// FindOpenPeriod retrieves the company's earliest OPEN period.
func (s *periodService) FindOpenPeriod(ctx context.Context, caller domain.AuthUser) (*domain.Period, error) {
	if err := requirePermission(caller, "periods", "read"); err != nil {
		return nil, err
	}
	return s.periodRepo.FindOpenPeriod(ctx, caller.CompanyID)
}

// ListPeriods retrieves the company's periods with optional filters.
func (s *periodService) ListPeriods(ctx context.Context, caller domain.AuthUser, params dto.ListPeriodsParams) ([]domain.Period, error) {
	if err := requirePermission(caller, "periods", "read"); err != nil {
		return nil, err
	}
	var status *domain.PeriodStatus
	if params.Status != nil {
		st := domain.PeriodStatus(*params.Status)
		status = &st
	}
	return s.periodRepo.ListPeriods(ctx, caller.CompanyID, params.Year, status)
}

// ClosePeriod closes an OPEN period. The approved entries of the period must
// sum to exactly equal debit and credit totals; any difference refuses the
// close with ErrPeriodUnbalanced.
func (s *periodService) ClosePeriod(ctx context.Context, caller domain.AuthUser, periodID string, note *string) (*domain.Period, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(caller, "periods", "close"); err != nil {
		return nil, err
	}

	period, err := s.periodRepo.FindPeriodByID(ctx, caller.CompanyID, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status != domain.PeriodOpen {
		return nil, fmt.Errorf("%w: only open periods can be closed", apperrors.ErrConflict)
	}

	totalDebit, totalCredit, err := s.periodRepo.SumApprovedTotals(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if !totalDebit.Equal(totalCredit) {
		logger.Warn("Period close refused, approved entries unbalanced",
			slog.String("period_id", periodID),
			slog.String("total_debit", totalDebit.StringFixed(2)),
			slog.String("total_credit", totalCredit.StringFixed(2)),
		)
		return nil, fmt.Errorf("%w: total debit %s, total credit %s",
			apperrors.ErrPeriodUnbalanced, totalDebit.StringFixed(2), totalCredit.StringFixed(2))
	}

	now := time.Now().UTC()
	if err := s.periodRepo.ClosePeriod(ctx, periodID, caller.UserID, note, now); err != nil {
		return nil, err
	}

	period.Status = domain.PeriodClosed
	period.ClosedBy = &caller.UserID
	period.ClosedAt = &now
	period.ClosingNote = note
	period.LastUpdatedAt = now
	period.LastUpdatedBy = caller.UserID

	logger.Info("Period closed", slog.String("period_id", periodID), slog.Int("year", period.Year), slog.Int("month", period.Month))
	return period, nil
}

// ReopenPeriod reopens a CLOSED period. The reopen is refused while the
// period of the following month (same year) is currently OPEN.
func (s *periodService) ReopenPeriod(ctx context.Context, caller domain.AuthUser, periodID string, note *string) (*domain.Period, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(caller, "periods", "reopen"); err != nil {
		return nil, err
	}

	period, err := s.periodRepo.FindPeriodByID(ctx, caller.CompanyID, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status != domain.PeriodClosed {
		return nil, fmt.Errorf("%w: only closed periods can be reopened", apperrors.ErrConflict)
	}

	next, err := s.periodRepo.FindPeriodByYearMonth(ctx, caller.CompanyID, period.Year, period.Month+1)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if next != nil && next.Status == domain.PeriodOpen {
		return nil, apperrors.ErrNextPeriodOpen
	}

	now := time.Now().UTC()
	if err := s.periodRepo.ReopenPeriod(ctx, periodID, caller.UserID, note, now); err != nil {
		return nil, err
	}

	period.Status = domain.PeriodOpen
	period.ReopenedBy = &caller.UserID
	period.ReopenedAt = &now
	period.ReopeningNote = note
	period.LastUpdatedAt = now
	period.LastUpdatedBy = caller.UserID

	logger.Info("Period reopened", slog.String("period_id", periodID), slog.Int("year", period.Year), slog.Int("month", period.Month))
	return period, nil
}

// CreateYear creates the twelve OPEN monthly periods of a year. The year must
// not have any periods yet.
func (s *periodService) CreateYear(ctx context.Context, caller domain.AuthUser, year int) ([]domain.Period, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(caller, "periods", "create"); err != nil {
		return nil, err
	}
	if year < 1900 || year > 2200 {
		return nil, fmt.Errorf("%w: year out of range", apperrors.ErrValidation)
	}

	existing, err := s.periodRepo.ListPeriods(ctx, caller.CompanyID, &year, nil)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.ErrDuplicate
	}

	now := time.Now().UTC()
	periods := newYearPeriods(caller.CompanyID, year, caller.UserID, now)
	if err := s.periodRepo.CreatePeriods(ctx, periods); err != nil {
		return nil, err
	}

	logger.Info("Year periods created", slog.Int("year", year), slog.String("company_id", caller.CompanyID))
	return periods, nil
}

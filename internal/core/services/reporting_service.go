package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
)

// reportingService builds financial reports from approved entries.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	periodRepo    portsrepo.PeriodRepositoryFacade
	accountRepo   portsrepo.AccountRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, periodRepo portsrepo.PeriodRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.ReportingSvc {
	return &reportingService{
		reportingRepo: reportingRepo,
		periodRepo:    periodRepo,
		accountRepo:   accountRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// TrialBalance builds the per-account debit/credit aggregate of one period.
func (s *reportingService) TrialBalance(ctx context.Context, caller domain.AuthUser, periodID string) ([]domain.TrialBalanceRow, error) {
	if err := requirePermission(caller, "reports", "read"); err != nil {
		return nil, err
	}

	// Reject reports on periods of other companies before touching line data.
	if _, err := s.periodRepo.FindPeriodByID(ctx, caller.CompanyID, periodID); err != nil {
		return nil, err
	}

	return s.reportingRepo.GetTrialBalanceData(ctx, caller.CompanyID, periodID)
}

// GeneralLedger builds the chronological movements of one account over a
// date range.
func (s *reportingService) GeneralLedger(ctx context.Context, caller domain.AuthUser, accountID string, from, to time.Time) ([]domain.GeneralLedgerRow, error) {
	if err := requirePermission(caller, "reports", "read"); err != nil {
		return nil, err
	}

	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range end precedes start", apperrors.ErrValidation)
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, caller.CompanyID, accountID); err != nil {
		return nil, err
	}

	return s.reportingRepo.GetGeneralLedgerData(ctx, caller.CompanyID, accountID, from, to)
}

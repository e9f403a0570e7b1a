package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
	portsrepo "github.com/jgbarallobre/Contable/internal/core/ports/repositories"
	portssvc "github.com/jgbarallobre/Contable/internal/core/ports/services"
	"github.com/jgbarallobre/Contable/internal/dto"
	"github.com/jgbarallobre/Contable/internal/middleware"
	"github.com/jgbarallobre/Contable/internal/utils/accounting"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

const defaultCurrency = "VES"

// journalService implements the journal entry lifecycle: posting, approval,
// annulment and reversal.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, periodRepo portsrepo.PeriodRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		periodRepo:  periodRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// resolvePeriod picks the posting period: the explicitly requested one, or
// the company's earliest open period. Either way the period must be OPEN at
// posting time.
func (s *journalService) resolvePeriod(ctx context.Context, companyID string, periodID *string) (*domain.Period, error) {
	var period *domain.Period
	var err error
	if periodID != nil && *periodID != "" {
		period, err = s.periodRepo.FindPeriodByID(ctx, companyID, *periodID)
	} else {
		period, err = s.periodRepo.FindOpenPeriod(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}
	if period.Status != domain.PeriodOpen {
		return nil, apperrors.ErrPeriodClosed
	}
	return period, nil
}

// CreateEntry validates and posts a new DRAFT entry. All checks run before
// the write; the sequence draw, header and lines then go in one database
// transaction.
func (s *journalService) CreateEntry(ctx context.Context, caller domain.AuthUser, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(caller, "journal", "create"); err != nil {
		return nil, err
	}

	if caller.CompanyID == "" {
		return nil, fmt.Errorf("%w: no company selected", apperrors.ErrValidation)
	}
	if req.EntryDate.IsZero() {
		return nil, fmt.Errorf("%w: entry date is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	lines := req.ToDomainLines()
	if err := accounting.ValidateLines(lines); err != nil {
		return nil, err
	}

	// The period gate runs before the balance check, so a request that fails
	// both surfaces the period error.
	period, err := s.resolvePeriod(ctx, caller.CompanyID, req.PeriodID)
	if err != nil {
		return nil, err
	}

	if err := accounting.ValidateBalance(lines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	totalDebit, totalCredit := accounting.SumLines(lines)

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	exchangeRate := req.ExchangeRate
	if exchangeRate.IsZero() {
		exchangeRate = decimal.NewFromInt(1)
	}

	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].EntryID = entryID
		if lines[i].Currency == "" {
			lines[i].Currency = currency
		}
		lines[i].BaseAmount = accounting.BaseAmount(lines[i], exchangeRate)
		lines[i].CreatedAt = now
		lines[i].CreatedBy = caller.UserID
	}

	entry := domain.JournalEntry{
		EntryID:      entryID,
		CompanyID:    caller.CompanyID,
		PeriodID:     period.PeriodID,
		EntryType:    req.EntryType,
		EntryDate:    req.EntryDate,
		Description:  req.Description,
		Reference:    req.Reference,
		Status:       domain.EntryDraft,
		TotalDebit:   totalDebit,
		TotalCredit:  totalCredit,
		Currency:     currency,
		ExchangeRate: exchangeRate,
		Lines:        lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, &entry); err != nil {
		logger.Error("Failed to save entry", slog.String("error", err.Error()), slog.String("company_id", caller.CompanyID))
		return nil, err
	}

	logger.Info("Entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("period_id", entry.PeriodID),
	)
	return &entry, nil
}

// ApproveEntry transitions a DRAFT entry to APPROVED. No balance re-check:
// the entry was validated at creation and its lines are immutable.
func (s *journalService) ApproveEntry(ctx context.Context, caller domain.AuthUser, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(caller, "journal", "approve"); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, caller.CompanyID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.EntryDraft {
		return nil, fmt.Errorf("%w: only draft entries can be approved", apperrors.ErrConflict)
	}

	now := time.Now().UTC()
	if err := s.journalRepo.ApproveEntry(ctx, caller.CompanyID, entryID, caller.UserID, now); err != nil {
		return nil, err
	}

	entry.Status = domain.EntryApproved
	entry.ApprovedBy = &caller.UserID
	entry.ApprovedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = caller.UserID

	logger.Info("Entry approved", slog.String("entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}

// AnnulEntry transitions an APPROVED entry to ANNULED. The reason is
// mandatory and the lines are left untouched.
func (s *journalService) AnnulEntry(ctx context.Context, caller domain.AuthUser, entryID, reason string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(caller, "journal", "annul"); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.ErrReasonRequired
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, caller.CompanyID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.EntryApproved {
		return nil, fmt.Errorf("%w: only approved entries can be annulled", apperrors.ErrConflict)
	}

	now := time.Now().UTC()
	if err := s.journalRepo.AnnulEntry(ctx, caller.CompanyID, entryID, caller.UserID, reason, now); err != nil {
		return nil, err
	}

	entry.Status = domain.EntryAnnuled
	entry.AnnulledBy = &caller.UserID
	entry.AnnulledAt = &now
	entry.AnnulmentReason = &reason
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = caller.UserID

	logger.Info("Entry annulled", slog.String("entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}

// ReverseEntry creates the counter-entry of an existing entry: an ADJUSTMENT
// entry, approved immediately, with every line's debit and credit swapped.
// The original entry is loaded in whatever status it is in and is not marked.
func (s *journalService) ReverseEntry(ctx context.Context, caller domain.AuthUser, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(caller, "journal", "reverse"); err != nil {
		return nil, err
	}

	original, err := s.journalRepo.FindEntryByID(ctx, caller.CompanyID, entryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reversalID := uuid.NewString()
	reference := "Revierte: " + original.EntryNumber

	reversalLines := make([]domain.JournalLine, len(original.Lines))
	for i, line := range original.Lines {
		reversalLines[i] = domain.JournalLine{
			LineID:           uuid.NewString(),
			EntryID:          reversalID,
			LineNumber:       line.LineNumber,
			AccountID:        line.AccountID,
			ThirdPartyID:     line.ThirdPartyID,
			CostCenterID:     line.CostCenterID,
			Description:      line.Description,
			Debit:            line.Credit,
			Credit:           line.Debit,
			Currency:         line.Currency,
			ExchangeRate:     line.ExchangeRate,
			BaseAmount:       line.BaseAmount,
			Reference:        line.Reference,
			TaxBase:          line.TaxBase,
			IVAAmount:        line.IVAAmount,
			IGTFAmount:       line.IGTFAmount,
			IsIGTFApplicable: line.IsIGTFApplicable,
			CreatedAt:        now,
			CreatedBy:        caller.UserID,
		}
	}

	reversal := domain.JournalEntry{
		EntryID:         reversalID,
		CompanyID:       original.CompanyID,
		PeriodID:        original.PeriodID,
		EntryType:       domain.EntryAdjustment,
		EntryNumber:     original.EntryNumber + "-R",
		EntryDate:       now,
		Description:     "REVERSO: " + original.Description,
		Reference:       &reference,
		Status:          domain.EntryApproved,
		TotalDebit:      original.TotalCredit,
		TotalCredit:     original.TotalDebit,
		Currency:        original.Currency,
		ExchangeRate:    original.ExchangeRate,
		ApprovedBy:      &caller.UserID,
		ApprovedAt:      &now,
		ReversedEntryID: &original.EntryID,
		Lines:           reversalLines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, &reversal); err != nil {
		logger.Error("Failed to save reversal entry", slog.String("error", err.Error()), slog.String("original_entry_id", entryID))
		return nil, err
	}

	logger.Info("Entry reversed",
		slog.String("original_entry_id", original.EntryID),
		slog.String("reversal_entry_id", reversal.EntryID),
		slog.String("reversal_number", reversal.EntryNumber),
	)
	return &reversal, nil
}

// GetEntry retrieves an entry with its lines.
func (s *journalService) GetEntry(ctx context.Context, caller domain.AuthUser, entryID string) (*domain.JournalEntry, error) {
	if err := requirePermission(caller, "journal", "read"); err != nil {
		return nil, err
	}
	return s.journalRepo.FindEntryByID(ctx, caller.CompanyID, entryID)
}

// ListEntries retrieves one page of entry headers matching the filters.
func (s *journalService) ListEntries(ctx context.Context, caller domain.AuthUser, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, int64, pagination.Params, error) {
	page := pagination.NewParams(params.Page, params.PageSize)

	if err := requirePermission(caller, "journal", "read"); err != nil {
		return nil, 0, page, err
	}

	filter := portsrepo.JournalEntryFilter{
		CompanyID: caller.CompanyID,
		PeriodID:  params.PeriodID,
		Search:    params.Search,
	}
	if params.Status != nil {
		status := domain.EntryStatus(*params.Status)
		filter.Status = &status
	}
	if params.EntryType != nil {
		entryType := domain.EntryType(*params.EntryType)
		filter.EntryType = &entryType
	}
	if params.DateFrom != nil {
		from, err := time.Parse("2006-01-02", *params.DateFrom)
		if err != nil {
			return nil, 0, page, fmt.Errorf("%w: invalid dateFrom", apperrors.ErrValidation)
		}
		filter.DateFrom = &from
	}
	if params.DateTo != nil {
		to, err := time.Parse("2006-01-02", *params.DateTo)
		if err != nil {
			return nil, 0, page, fmt.Errorf("%w: invalid dateTo", apperrors.ErrValidation)
		}
		filter.DateTo = &to
	}

	entries, total, err := s.journalRepo.ListEntries(ctx, filter, page)
	if err != nil {
		return nil, 0, page, err
	}
	return entries, total, page, nil
}

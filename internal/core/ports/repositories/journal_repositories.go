package repositories

import (
	"context"
	"time"

	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

// JournalEntryFilter narrows an entry listing. Every field except CompanyID
// is optional; the column set is fixed here, callers never name columns.
type JournalEntryFilter struct {
	CompanyID string
	PeriodID  *string
	Status    *domain.EntryStatus
	EntryType *domain.EntryType
	DateFrom  *time.Time
	DateTo    *time.Time
	// Search matches entry number, description and reference.
	Search *string
}

// JournalReader defines read operations for journal entries.
type JournalReader interface {
	// FindEntryByID retrieves an entry header with its lines ordered by line number.
	FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves one page of entry headers matching the filter,
	// plus the total count of matches.
	ListEntries(ctx context.Context, filter JournalEntryFilter, page pagination.Params) ([]domain.JournalEntry, int64, error)
}

// JournalWriter defines write operations for journal entries.
type JournalWriter interface {
	// SaveEntry persists a header and its lines in one database transaction.
	// When entry.EntryNumber is empty the per-(company, type) sequence is
	// drawn inside the same transaction and written back onto the entry.
	SaveEntry(ctx context.Context, entry *domain.JournalEntry) error

	// ApproveEntry stamps an entry APPROVED. The update is guarded on DRAFT
	// status; zero rows affected surfaces as ErrConflict.
	ApproveEntry(ctx context.Context, companyID, entryID, approverID string, approvedAt time.Time) error

	// AnnulEntry stamps an entry ANNULED with the reason. The update is
	// guarded on APPROVED status; zero rows affected surfaces as ErrConflict.
	AnnulEntry(ctx context.Context, companyID, entryID, annullerID, reason string, annulledAt time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

package services

import (
	"context"

	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/dto"
	"github.com/jgbarallobre/Contable/internal/utils/pagination"
)

// JournalReaderSvc defines read operations for journal entries.
type JournalReaderSvc interface {
	// GetEntry retrieves an entry with its lines.
	GetEntry(ctx context.Context, caller domain.AuthUser, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves one page of entry headers plus the total count
	// and the normalized page parameters.
	ListEntries(ctx context.Context, caller domain.AuthUser, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, int64, pagination.Params, error)
}

// JournalWriterSvc defines the entry lifecycle operations.
type JournalWriterSvc interface {
	// CreateEntry posts a new DRAFT entry, drawing its number from the
	// company's sequence for the entry type.
	CreateEntry(ctx context.Context, caller domain.AuthUser, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)

	// ApproveEntry transitions a DRAFT entry to APPROVED.
	ApproveEntry(ctx context.Context, caller domain.AuthUser, entryID string) (*domain.JournalEntry, error)

	// AnnulEntry transitions an APPROVED entry to ANNULED with a reason.
	AnnulEntry(ctx context.Context, caller domain.AuthUser, entryID, reason string) (*domain.JournalEntry, error)

	// ReverseEntry creates the counter-entry of an existing entry.
	ReverseEntry(ctx context.Context, caller domain.AuthUser, entryID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a journal entry; it doubles as the document type keying
// the per-company numbering sequence.
type EntryType string

const (
	EntryDaily      EntryType = "DAILY"
	EntryIncome     EntryType = "INCOME"
	EntryExpense    EntryType = "EXPENSE"
	EntryAdjustment EntryType = "ADJUSTMENT"
	EntryClosing    EntryType = "CLOSING"
)

// EntryStatus is the lifecycle state of a journal entry.
// DRAFT -> APPROVED -> ANNULED; no transition returns an entry to DRAFT.
// Reversal creates a brand-new APPROVED entry instead of mutating states.
type EntryStatus string

const (
	EntryDraft    EntryStatus = "DRAFT"
	EntryApproved EntryStatus = "APPROVED"
	EntryAnnuled  EntryStatus = "ANNULED"
)

// JournalEntry is the header of one double-entry accounting transaction. It
// exclusively owns its Lines: they are written with the header in the same
// database transaction and are never updated afterwards.
type JournalEntry struct {
	EntryID     string      `json:"entryID"` // Primary key (UUID)
	CompanyID   string      `json:"companyID"`
	PeriodID    string      `json:"periodID"`
	EntryType   EntryType   `json:"entryType"`
	EntryNumber string      `json:"entryNumber"` // Zero-padded sequence, e.g. "000125"
	EntryDate   time.Time   `json:"entryDate"`
	Description string      `json:"description"`
	Reference   *string     `json:"reference,omitempty"`
	Status      EntryStatus `json:"status"`

	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`

	ApprovedBy      *string    `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	AnnulledBy      *string    `json:"annulledBy,omitempty"`
	AnnulledAt      *time.Time `json:"annulledAt,omitempty"`
	AnnulmentReason *string    `json:"annulmentReason,omitempty"`

	// ReversedEntryID points at the entry this one reverses. The original entry
	// itself carries no mark that it was reversed.
	ReversedEntryID *string `json:"reversedEntryID,omitempty"`

	Lines []JournalLine `json:"lines,omitempty"`

	AuditFields
}

// JournalLine is one debit-or-credit movement against one account within an
// entry. LineNumber is 1-based and preserves the caller's input order
// end-to-end, including through a reversal copy.
type JournalLine struct {
	LineID       string  `json:"lineID"` // Primary key (UUID)
	EntryID      string  `json:"entryID"`
	LineNumber   int     `json:"lineNumber"`
	AccountID    string  `json:"accountID"`
	ThirdPartyID *string `json:"thirdPartyID,omitempty"`
	CostCenterID *string `json:"costCenterID,omitempty"`
	Description  *string `json:"description,omitempty"`

	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	// BaseAmount is the movement expressed in the functional currency:
	// (line rate, falling back to header rate, falling back to 1) times the
	// non-zero side of the line.
	BaseAmount decimal.Decimal `json:"baseAmount"`
	Reference  *string         `json:"reference,omitempty"`

	// Venezuelan fiscal fields; opaque to the ledger, carried for reporting.
	TaxBase          decimal.Decimal `json:"taxBase"`
	IVAAmount        decimal.Decimal `json:"ivaAmount"`
	IGTFAmount       decimal.Decimal `json:"igtfAmount"`
	IsIGTFApplicable bool            `json:"isIGTFApplicable"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// DocumentSequence is the per-(company, document type) monotonic counter
// backing human-readable entry numbers.
type DocumentSequence struct {
	CompanyID     string    `json:"companyID"`
	DocumentType  EntryType `json:"documentType"`
	CurrentNumber int64     `json:"currentNumber"`
}

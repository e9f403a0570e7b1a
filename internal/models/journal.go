package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus mirrors domain.EntryStatus at the persistence layer.
type EntryStatus string

const (
	EntryDraft    EntryStatus = "DRAFT"
	EntryApproved EntryStatus = "APPROVED"
	EntryAnnuled  EntryStatus = "ANNULED"
)

// JournalEntry is the persistence model for journal_entry_headers rows.
type JournalEntry struct {
	EntryID     string      `json:"entryID"`
	CompanyID   string      `json:"companyID"`
	PeriodID    string      `json:"periodID"`
	EntryType   string      `json:"entryType"`
	EntryNumber string      `json:"entryNumber"`
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
	ReversedEntryID *string    `json:"reversedEntryID,omitempty"`

	AuditFields
}

// JournalLine is the persistence model for journal_entry_lines rows.
type JournalLine struct {
	LineID       string  `json:"lineID"`
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
	BaseAmount   decimal.Decimal `json:"baseAmount"`
	Reference    *string         `json:"reference,omitempty"`

	TaxBase          decimal.Decimal `json:"taxBase"`
	IVAAmount        decimal.Decimal `json:"ivaAmount"`
	IGTFAmount       decimal.Decimal `json:"igtfAmount"`
	IsIGTFApplicable bool            `json:"isIGTFApplicable"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

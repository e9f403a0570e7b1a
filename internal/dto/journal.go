package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// CreateJournalLineRequest is one line of a new entry. Normally one of debit
// or credit is non-zero, but only the entry-level balance check is enforced.
type CreateJournalLineRequest struct {
	AccountID        string          `json:"accountID" binding:"required"`
	ThirdPartyID     *string         `json:"thirdPartyID"`
	CostCenterID     *string         `json:"costCenterID"`
	Description      *string         `json:"description"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	Currency         string          `json:"currency"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	Reference        *string         `json:"reference"`
	TaxBase          decimal.Decimal `json:"taxBase"`
	IVAAmount        decimal.Decimal `json:"ivaAmount"`
	IGTFAmount       decimal.Decimal `json:"igtfAmount"`
	IsIGTFApplicable bool            `json:"isIGTFApplicable"`
}

// CreateJournalEntryRequest defines the data needed to post a new entry.
type CreateJournalEntryRequest struct {
	PeriodID     *string                    `json:"periodID"` // Optional: defaults to the open period
	EntryType    domain.EntryType           `json:"entryType" binding:"required,oneof=DAILY INCOME EXPENSE ADJUSTMENT CLOSING"`
	EntryDate    time.Time                  `json:"entryDate" binding:"required"`
	Description  string                     `json:"description" binding:"required"`
	Reference    *string                    `json:"reference"`
	Currency     string                     `json:"currency"`
	ExchangeRate decimal.Decimal            `json:"exchangeRate"`
	Lines        []CreateJournalLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToDomainLines converts the request lines to domain lines, numbering them
// in input order starting at 1.
func (r CreateJournalEntryRequest) ToDomainLines() []domain.JournalLine {
	lines := make([]domain.JournalLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalLine{
			LineNumber:       i + 1,
			AccountID:        l.AccountID,
			ThirdPartyID:     l.ThirdPartyID,
			CostCenterID:     l.CostCenterID,
			Description:      l.Description,
			Debit:            l.Debit,
			Credit:           l.Credit,
			Currency:         l.Currency,
			ExchangeRate:     l.ExchangeRate,
			Reference:        l.Reference,
			TaxBase:          l.TaxBase,
			IVAAmount:        l.IVAAmount,
			IGTFAmount:       l.IGTFAmount,
			IsIGTFApplicable: l.IsIGTFApplicable,
		}
	}
	return lines
}

// AnnulJournalEntryRequest carries the mandatory annulment reason.
type AnnulJournalEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	Page      int     `form:"page,default=1"`
	PageSize  int     `form:"pageSize,default=20"`
	PeriodID  *string `form:"periodID"`
	Status    *string `form:"status" binding:"omitempty,oneof=DRAFT APPROVED ANNULED"`
	EntryType *string `form:"entryType" binding:"omitempty,oneof=DAILY INCOME EXPENSE ADJUSTMENT CLOSING"`
	DateFrom  *string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo    *string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Search    *string `form:"search"`
}

// JournalLineResponse defines the data returned for one entry line.
type JournalLineResponse struct {
	LineID           string          `json:"lineID"`
	LineNumber       int             `json:"lineNumber"`
	AccountID        string          `json:"accountID"`
	ThirdPartyID     *string         `json:"thirdPartyID,omitempty"`
	CostCenterID     *string         `json:"costCenterID,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	Currency         string          `json:"currency"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	BaseAmount       decimal.Decimal `json:"baseAmount"`
	Reference        *string         `json:"reference,omitempty"`
	TaxBase          decimal.Decimal `json:"taxBase"`
	IVAAmount        decimal.Decimal `json:"ivaAmount"`
	IGTFAmount       decimal.Decimal `json:"igtfAmount"`
	IsIGTFApplicable bool            `json:"isIGTFApplicable"`
}

// JournalEntryResponse defines the data returned for an entry header, with
// lines included when they were loaded.
type JournalEntryResponse struct {
	EntryID         string                `json:"entryID"`
	CompanyID       string                `json:"companyID"`
	PeriodID        string                `json:"periodID"`
	EntryType       domain.EntryType      `json:"entryType"`
	EntryNumber     string                `json:"entryNumber"`
	EntryDate       time.Time             `json:"entryDate"`
	Description     string                `json:"description"`
	Reference       *string               `json:"reference,omitempty"`
	Status          domain.EntryStatus    `json:"status"`
	TotalDebit      decimal.Decimal       `json:"totalDebit"`
	TotalCredit     decimal.Decimal       `json:"totalCredit"`
	Currency        string                `json:"currency"`
	ExchangeRate    decimal.Decimal       `json:"exchangeRate"`
	ApprovedBy      *string               `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time            `json:"approvedAt,omitempty"`
	AnnulledBy      *string               `json:"annulledBy,omitempty"`
	AnnulledAt      *time.Time            `json:"annulledAt,omitempty"`
	AnnulmentReason *string               `json:"annulmentReason,omitempty"`
	ReversedEntryID *string               `json:"reversedEntryID,omitempty"`
	Lines           []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
}

// ToJournalLineResponse converts a domain.JournalLine to JournalLineResponse.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:           l.LineID,
		LineNumber:       l.LineNumber,
		AccountID:        l.AccountID,
		ThirdPartyID:     l.ThirdPartyID,
		CostCenterID:     l.CostCenterID,
		Description:      l.Description,
		Debit:            l.Debit,
		Credit:           l.Credit,
		Currency:         l.Currency,
		ExchangeRate:     l.ExchangeRate,
		BaseAmount:       l.BaseAmount,
		Reference:        l.Reference,
		TaxBase:          l.TaxBase,
		IVAAmount:        l.IVAAmount,
		IGTFAmount:       l.IGTFAmount,
		IsIGTFApplicable: l.IsIGTFApplicable,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:         e.EntryID,
		CompanyID:       e.CompanyID,
		PeriodID:        e.PeriodID,
		EntryType:       e.EntryType,
		EntryNumber:     e.EntryNumber,
		EntryDate:       e.EntryDate,
		Description:     e.Description,
		Reference:       e.Reference,
		Status:          e.Status,
		TotalDebit:      e.TotalDebit,
		TotalCredit:     e.TotalCredit,
		Currency:        e.Currency,
		ExchangeRate:    e.ExchangeRate,
		ApprovedBy:      e.ApprovedBy,
		ApprovedAt:      e.ApprovedAt,
		AnnulledBy:      e.AnnulledBy,
		AnnulledAt:      e.AnnulledAt,
		AnnulmentReason: e.AnnulmentReason,
		ReversedEntryID: e.ReversedEntryID,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lines[i] = ToJournalLineResponse(&l)
		}
	}
	return resp
}

// ToListJournalEntryResponse converts a slice of domain.JournalEntry to DTOs.
func ToListJournalEntryResponse(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToJournalEntryResponse(&e)
	}
	return res
}

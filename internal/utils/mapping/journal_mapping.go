package mapping

import (
	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:         d.EntryID,
		CompanyID:       d.CompanyID,
		PeriodID:        d.PeriodID,
		EntryType:       string(d.EntryType),
		EntryNumber:     d.EntryNumber,
		EntryDate:       d.EntryDate,
		Description:     d.Description,
		Reference:       d.Reference,
		Status:          models.EntryStatus(d.Status),
		TotalDebit:      d.TotalDebit,
		TotalCredit:     d.TotalCredit,
		Currency:        d.Currency,
		ExchangeRate:    d.ExchangeRate,
		ApprovedBy:      d.ApprovedBy,
		ApprovedAt:      d.ApprovedAt,
		AnnulledBy:      d.AnnulledBy,
		AnnulledAt:      d.AnnulledAt,
		AnnulmentReason: d.AnnulmentReason,
		ReversedEntryID: d.ReversedEntryID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		CompanyID:       m.CompanyID,
		PeriodID:        m.PeriodID,
		EntryType:       domain.EntryType(m.EntryType),
		EntryNumber:     m.EntryNumber,
		EntryDate:       m.EntryDate,
		Description:     m.Description,
		Reference:       m.Reference,
		Status:          domain.EntryStatus(m.Status),
		TotalDebit:      m.TotalDebit,
		TotalCredit:     m.TotalCredit,
		Currency:        m.Currency,
		ExchangeRate:    m.ExchangeRate,
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		AnnulledBy:      m.AnnulledBy,
		AnnulledAt:      m.AnnulledAt,
		AnnulmentReason: m.AnnulmentReason,
		ReversedEntryID: m.ReversedEntryID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:           d.LineID,
		EntryID:          d.EntryID,
		LineNumber:       d.LineNumber,
		AccountID:        d.AccountID,
		ThirdPartyID:     d.ThirdPartyID,
		CostCenterID:     d.CostCenterID,
		Description:      d.Description,
		Debit:            d.Debit,
		Credit:           d.Credit,
		Currency:         d.Currency,
		ExchangeRate:     d.ExchangeRate,
		BaseAmount:       d.BaseAmount,
		Reference:        d.Reference,
		TaxBase:          d.TaxBase,
		IVAAmount:        d.IVAAmount,
		IGTFAmount:       d.IGTFAmount,
		IsIGTFApplicable: d.IsIGTFApplicable,
		CreatedAt:        d.CreatedAt,
		CreatedBy:        d.CreatedBy,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:           m.LineID,
		EntryID:          m.EntryID,
		LineNumber:       m.LineNumber,
		AccountID:        m.AccountID,
		ThirdPartyID:     m.ThirdPartyID,
		CostCenterID:     m.CostCenterID,
		Description:      m.Description,
		Debit:            m.Debit,
		Credit:           m.Credit,
		Currency:         m.Currency,
		ExchangeRate:     m.ExchangeRate,
		BaseAmount:       m.BaseAmount,
		Reference:        m.Reference,
		TaxBase:          m.TaxBase,
		IVAAmount:        m.IVAAmount,
		IGTFAmount:       m.IGTFAmount,
		IsIGTFApplicable: m.IsIGTFApplicable,
		CreatedAt:        m.CreatedAt,
		CreatedBy:        m.CreatedBy,
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to domain JournalLines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}

package mapping

import (
	"github.com/jgbarallobre/Contable/internal/core/domain"
	"github.com/jgbarallobre/Contable/internal/models"
)

// ToModelPeriod converts a domain Period to a model Period
func ToModelPeriod(d domain.Period) models.Period {
	return models.Period{
		PeriodID:      d.PeriodID,
		CompanyID:     d.CompanyID,
		Year:          d.Year,
		Month:         d.Month,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Status:        string(d.Status),
		ClosedBy:      d.ClosedBy,
		ClosedAt:      d.ClosedAt,
		ClosingNote:   d.ClosingNote,
		ReopenedBy:    d.ReopenedBy,
		ReopenedAt:    d.ReopenedAt,
		ReopeningNote: d.ReopeningNote,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a model Period to a domain Period
func ToDomainPeriod(m models.Period) domain.Period {
	return domain.Period{
		PeriodID:      m.PeriodID,
		CompanyID:     m.CompanyID,
		Year:          m.Year,
		Month:         m.Month,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Status:        domain.PeriodStatus(m.Status),
		ClosedBy:      m.ClosedBy,
		ClosedAt:      m.ClosedAt,
		ClosingNote:   m.ClosingNote,
		ReopenedBy:    m.ReopenedBy,
		ReopenedAt:    m.ReopenedAt,
		ReopeningNote: m.ReopeningNote,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPeriodSlice converts a slice of model Periods to domain Periods
func ToDomainPeriodSlice(ms []models.Period) []domain.Period {
	ds := make([]domain.Period, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPeriod(m)
	}
	return ds
}

package dto

import (
	"time"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// ClosePeriodRequest carries the optional closing note.
type ClosePeriodRequest struct {
	Note *string `json:"note"`
}

// ReopenPeriodRequest carries the optional reopening note.
type ReopenPeriodRequest struct {
	Note *string `json:"note"`
}

// CreateYearRequest asks for the twelve monthly periods of a year.
type CreateYearRequest struct {
	Year int `json:"year" binding:"required,min=1900,max=2200"`
}

// ListPeriodsParams defines query parameters for listing periods.
type ListPeriodsParams struct {
	Year   *int    `form:"year"`
	Status *string `form:"status" binding:"omitempty,oneof=OPEN CLOSED LOCKED"`
}

// PeriodResponse defines the data returned for a period.
type PeriodResponse struct {
	PeriodID      string              `json:"periodID"`
	CompanyID     string              `json:"companyID"`
	Year          int                 `json:"year"`
	Month         int                 `json:"month"`
	StartDate     time.Time           `json:"startDate"`
	EndDate       time.Time           `json:"endDate"`
	Status        domain.PeriodStatus `json:"status"`
	ClosedBy      *string             `json:"closedBy,omitempty"`
	ClosedAt      *time.Time          `json:"closedAt,omitempty"`
	ClosingNote   *string             `json:"closingNote,omitempty"`
	ReopenedBy    *string             `json:"reopenedBy,omitempty"`
	ReopenedAt    *time.Time          `json:"reopenedAt,omitempty"`
	ReopeningNote *string             `json:"reopeningNote,omitempty"`
}

// ToPeriodResponse converts a domain.Period to PeriodResponse.
func ToPeriodResponse(p *domain.Period) PeriodResponse {
	return PeriodResponse{
		PeriodID:      p.PeriodID,
		CompanyID:     p.CompanyID,
		Year:          p.Year,
		Month:         p.Month,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Status:        p.Status,
		ClosedBy:      p.ClosedBy,
		ClosedAt:      p.ClosedAt,
		ClosingNote:   p.ClosingNote,
		ReopenedBy:    p.ReopenedBy,
		ReopenedAt:    p.ReopenedAt,
		ReopeningNote: p.ReopeningNote,
	}
}

// ToListPeriodResponse converts a slice of domain.Period to DTOs.
func ToListPeriodResponse(periods []domain.Period) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = ToPeriodResponse(&p)
	}
	return res
}

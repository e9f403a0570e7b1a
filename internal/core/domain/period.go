package domain

import "time"

// PeriodStatus indicates whether a period accepts postings.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
	// PeriodLocked is terminal. Nothing in this service transitions a period
	// into or out of LOCKED; it is set externally (year-end procedures).
	PeriodLocked PeriodStatus = "LOCKED"
)

// Period is a company's monthly accounting window. Postings are only accepted
// while the status is OPEN.
type Period struct {
	PeriodID  string       `json:"periodID"` // Primary key (UUID)
	CompanyID string       `json:"companyID"`
	Year      int          `json:"year"`
	Month     int          `json:"month"` // 1..12
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	Status    PeriodStatus `json:"status"`

	ClosedBy      *string    `json:"closedBy,omitempty"`
	ClosedAt      *time.Time `json:"closedAt,omitempty"`
	ClosingNote   *string    `json:"closingNote,omitempty"`
	ReopenedBy    *string    `json:"reopenedBy,omitempty"`
	ReopenedAt    *time.Time `json:"reopenedAt,omitempty"`
	ReopeningNote *string    `json:"reopeningNote,omitempty"`

	AuditFields
}

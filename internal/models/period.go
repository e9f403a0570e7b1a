package models

import "time"

// Period status values as stored.
const (
	PeriodOpen   = "OPEN"
	PeriodClosed = "CLOSED"
	PeriodLocked = "LOCKED"
)

// Period is the persistence model for periods rows.
type Period struct {
	PeriodID  string    `json:"periodID"`
	CompanyID string    `json:"companyID"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`

	ClosedBy      *string    `json:"closedBy,omitempty"`
	ClosedAt      *time.Time `json:"closedAt,omitempty"`
	ClosingNote   *string    `json:"closingNote,omitempty"`
	ReopenedBy    *string    `json:"reopenedBy,omitempty"`
	ReopenedAt    *time.Time `json:"reopenedAt,omitempty"`
	ReopeningNote *string    `json:"reopeningNote,omitempty"`

	AuditFields
}

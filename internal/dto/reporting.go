package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// TrialBalanceRow is one account line of the trial balance.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// TrialBalanceResponse is the trial balance of one period, with grand totals.
type TrialBalanceResponse struct {
	PeriodID    string            `json:"periodID"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// ToTrialBalanceResponse builds the response from domain rows, summing the
// grand totals.
func ToTrialBalanceResponse(periodID string, rows []domain.TrialBalanceRow) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		PeriodID:    periodID,
		Rows:        make([]TrialBalanceRow, len(rows)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for i, r := range rows {
		resp.Rows[i] = TrialBalanceRow{
			AccountID:   r.AccountID,
			AccountCode: r.AccountCode,
			AccountName: r.AccountName,
			TotalDebit:  r.TotalDebit,
			TotalCredit: r.TotalCredit,
		}
		resp.TotalDebit = resp.TotalDebit.Add(r.TotalDebit)
		resp.TotalCredit = resp.TotalCredit.Add(r.TotalCredit)
	}
	return resp
}

// GeneralLedgerParams defines query parameters for the general ledger.
type GeneralLedgerParams struct {
	DateFrom string `form:"dateFrom" binding:"required,datetime=2006-01-02"`
	DateTo   string `form:"dateTo" binding:"required,datetime=2006-01-02"`
}

// GeneralLedgerRow is one approved movement against the requested account.
type GeneralLedgerRow struct {
	EntryID     string          `json:"entryID"`
	EntryNumber string          `json:"entryNumber"`
	EntryDate   time.Time       `json:"entryDate"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// GeneralLedgerResponse is the ledger of one account over a date range.
type GeneralLedgerResponse struct {
	AccountID string             `json:"accountID"`
	DateFrom  string             `json:"dateFrom"`
	DateTo    string             `json:"dateTo"`
	Rows      []GeneralLedgerRow `json:"rows"`
}

// ToGeneralLedgerResponse builds the response from domain rows.
func ToGeneralLedgerResponse(accountID, dateFrom, dateTo string, rows []domain.GeneralLedgerRow) GeneralLedgerResponse {
	resp := GeneralLedgerResponse{
		AccountID: accountID,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		Rows:      make([]GeneralLedgerRow, len(rows)),
	}
	for i, r := range rows {
		resp.Rows[i] = GeneralLedgerRow{
			EntryID:     r.EntryID,
			EntryNumber: r.EntryNumber,
			EntryDate:   r.EntryDate,
			Description: r.Description,
			Debit:       r.Debit,
			Credit:      r.Credit,
		}
	}
	return resp
}

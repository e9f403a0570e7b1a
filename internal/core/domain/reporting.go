package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is the per-account debit/credit aggregate over the approved
// entries of one period.
type TrialBalanceRow struct {
	AccountID   string
	AccountCode string
	AccountName string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// GeneralLedgerRow is one approved movement against an account, joined to its
// entry header.
type GeneralLedgerRow struct {
	EntryID     string
	EntryNumber string
	EntryDate   time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
)

// BalanceTolerance is the maximum absolute difference between total debits
// and total credits an entry may carry and still be considered balanced.
// Amounts arrive rounded to two decimals, so anything beyond a cent is a
// real imbalance and not a rounding artifact.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// SumLines returns the total debit and total credit across the given lines.
func SumLines(lines []domain.JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	return totalDebit, totalCredit
}

// ValidateLines checks the required fields of an entry's lines: at least one
// line, each naming an account. A line carrying both a debit and a credit is
// unusual but not forbidden; the balance check is the only amount rule.
func ValidateLines(lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: entry must have at least one line", apperrors.ErrValidation)
	}
	for i, line := range lines {
		if line.AccountID == "" {
			return fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, i+1)
		}
	}
	return nil
}

// ValidateBalance checks that total debits and total credits differ by no
// more than BalanceTolerance. It returns an UnbalancedError carrying both
// totals when they do not match.
func ValidateBalance(lines []domain.JournalLine) error {
	totalDebit, totalCredit := SumLines(lines)
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(BalanceTolerance) {
		return apperrors.NewUnbalancedError(totalDebit, totalCredit)
	}
	return nil
}

// BaseAmount computes the functional currency amount of a line. The line
// rate wins over the header rate; a missing or zero rate counts as 1.
// The moved amount is whichever side of the line is non zero.
func BaseAmount(line domain.JournalLine, headerRate decimal.Decimal) decimal.Decimal {
	rate := line.ExchangeRate
	if rate.IsZero() {
		rate = headerRate
	}
	if rate.IsZero() {
		rate = decimal.NewFromInt(1)
	}
	amount := line.Debit
	if amount.IsZero() {
		amount = line.Credit
	}
	return amount.Mul(rate)
}

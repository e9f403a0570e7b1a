package accounting

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgbarallobre/Contable/internal/apperrors"
	"github.com/jgbarallobre/Contable/internal/core/domain"
)

func line(account string, debit, credit float64) domain.JournalLine {
	return domain.JournalLine{
		AccountID: account,
		Debit:     decimal.NewFromFloat(debit),
		Credit:    decimal.NewFromFloat(credit),
	}
}

func TestSumLines(t *testing.T) {
	lines := []domain.JournalLine{
		line("acc-1", 100.50, 0),
		line("acc-2", 25, 0),
		line("acc-3", 0, 125.50),
	}
	totalDebit, totalCredit := SumLines(lines)
	assert.True(t, totalDebit.Equal(decimal.NewFromFloat(125.50)))
	assert.True(t, totalCredit.Equal(decimal.NewFromFloat(125.50)))
}

func TestValidateLines(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		err := ValidateLines([]domain.JournalLine{line("a", 10, 0), line("b", 0, 10)})
		assert.NoError(t, err)
	})
	t.Run("single line", func(t *testing.T) {
		err := ValidateLines([]domain.JournalLine{line("a", 10, 0)})
		assert.NoError(t, err)
	})
	t.Run("both sides set", func(t *testing.T) {
		err := ValidateLines([]domain.JournalLine{line("a", 5, 5), line("b", 0, 10)})
		assert.NoError(t, err)
	})
	t.Run("zero amount line", func(t *testing.T) {
		err := ValidateLines([]domain.JournalLine{line("a", 0, 0), line("b", 0, 10)})
		assert.NoError(t, err)
	})
	t.Run("no lines", func(t *testing.T) {
		err := ValidateLines(nil)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
	t.Run("missing account", func(t *testing.T) {
		err := ValidateLines([]domain.JournalLine{line("", 10, 0), line("b", 0, 10)})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestValidateBalance(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		err := ValidateBalance([]domain.JournalLine{line("a", 100, 0), line("b", 0, 100)})
		assert.NoError(t, err)
	})
	t.Run("within tolerance", func(t *testing.T) {
		err := ValidateBalance([]domain.JournalLine{line("a", 100.01, 0), line("b", 0, 100)})
		assert.NoError(t, err)
	})
	t.Run("lone cent debit within tolerance", func(t *testing.T) {
		err := ValidateBalance([]domain.JournalLine{line("a", 0.01, 0)})
		assert.NoError(t, err)
	})
	t.Run("unbalanced", func(t *testing.T) {
		err := ValidateBalance([]domain.JournalLine{line("a", 100, 0), line("b", 0, 90)})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUnbalanced)

		var unbalanced *apperrors.UnbalancedError
		require.True(t, errors.As(err, &unbalanced))
		assert.Equal(t, "100.00", unbalanced.TotalDebit.StringFixed(2))
		assert.Equal(t, "90.00", unbalanced.TotalCredit.StringFixed(2))
	})
}

func TestBaseAmount(t *testing.T) {
	t.Run("line rate wins", func(t *testing.T) {
		l := line("a", 100, 0)
		l.ExchangeRate = decimal.NewFromFloat(36.5)
		got := BaseAmount(l, decimal.NewFromInt(40))
		assert.True(t, got.Equal(decimal.NewFromFloat(3650)))
	})
	t.Run("falls back to header rate", func(t *testing.T) {
		got := BaseAmount(line("a", 0, 10), decimal.NewFromInt(40))
		assert.True(t, got.Equal(decimal.NewFromInt(400)))
	})
	t.Run("defaults to one", func(t *testing.T) {
		got := BaseAmount(line("a", 10, 0), decimal.Zero)
		assert.True(t, got.Equal(decimal.NewFromInt(10)))
	})
}

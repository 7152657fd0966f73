package ledger_test

import (
	"testing"
	"time"

	"github.com/agencybooks/ledger_engine/internal/core/domain"
	"github.com/agencybooks/ledger_engine/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func feedTxn(date string, txnType domain.TransactionType, amount string) domain.Transaction {
	return domain.Transaction{
		Date:   date,
		Type:   txnType,
		Amount: decimal.RequireFromString(amount),
	}
}

func TestSummarizePeriod_CurrentMonthOnly(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	feed := []domain.Transaction{
		feedTxn("2025-06-01", domain.Credit, "100"),
		feedTxn("2025-06-20", domain.Debit, "40"),
		// Last month, and the largest transaction in the feed: still excluded.
		feedTxn("2025-05-31", domain.Credit, "9999"),
		// Same month, previous year: excluded.
		feedTxn("2024-06-10", domain.Credit, "500"),
	}

	income, expenses, net := ledger.SummarizePeriod(feed, now)

	assert.True(t, income.Equal(decimal.NewFromInt(100)), "income %s", income)
	assert.True(t, expenses.Equal(decimal.NewFromInt(40)), "expenses %s", expenses)
	assert.True(t, net.Equal(decimal.NewFromInt(60)), "net %s", net)
}

func TestSummarizePeriod_UnparseableDatesExcluded(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	feed := []domain.Transaction{
		feedTxn("", domain.Credit, "100"),
		feedTxn("garbage", domain.Debit, "100"),
	}

	income, expenses, net := ledger.SummarizePeriod(feed, now)

	assert.True(t, income.IsZero())
	assert.True(t, expenses.IsZero())
	assert.True(t, net.IsZero())
}

func TestSummarizePeriod_EmptyFeed(t *testing.T) {
	income, expenses, net := ledger.SummarizePeriod(nil, time.Now())
	assert.True(t, income.IsZero())
	assert.True(t, expenses.IsZero())
	assert.True(t, net.IsZero())
}

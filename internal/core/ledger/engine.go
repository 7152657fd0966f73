// Package ledger reconstructs a general ledger view from an already-fetched
// snapshot of posted journal entries, their lines and the active chart of
// accounts. Everything here is pure and synchronous: no I/O, no shared mutable
// state, safe to run concurrently on independent snapshots.
package ledger

import (
	"time"

	"github.com/agencybooks/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Result is the full output of one reconstruction pass.
type Result struct {
	// Balances maps account id to its signed balance. Only resolvable account
	// ids appear; lines referencing unknown accounts are skipped here.
	Balances map[string]decimal.Decimal

	// TotalBalance sums asset-type balances only.
	TotalBalance decimal.Decimal

	// Feed is the display-ordered transaction list with accumulation-order
	// running balances attached.
	Feed []domain.Transaction

	// Summary bundles TotalBalance with the current-month figures.
	Summary domain.LedgerSummary
}

// Compute runs the three stages in their required sequence: accumulate
// balances, build and sort the feed, then summarize the current period.
// Idempotent: unchanged input yields an identical Result. If the upstream
// source capped the entries it returned, the result is an approximation over
// that window.
func Compute(entries []domain.JournalEntry, lines []domain.JournalEntryLine, accounts []domain.Account, now time.Time) Result {
	reg := NewAccountRegistry(accounts)

	balances := AccumulateBalances(lines, reg)
	total := TotalAssetBalance(balances, reg)

	feed := BuildFeed(entries, lines, reg)
	income, expenses, net := SummarizePeriod(feed, now)

	return Result{
		Balances:     balances,
		TotalBalance: total,
		Feed:         feed,
		Summary: domain.LedgerSummary{
			TotalBalance:    total,
			MonthlyIncome:   income,
			MonthlyExpenses: expenses,
			NetProfit:       net,
		},
	}
}

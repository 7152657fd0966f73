package ledger

import (
	"github.com/agencybooks/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccumulateBalances folds journal entry lines into per-account signed balances.
//
// Sign convention:
//   - ASSET/EXPENSE accounts: balance += debit - credit
//   - every other resolved type (LIABILITY/EQUITY/REVENUE, and Unknown):
//     balance += credit - debit
//
// Lines whose account id does not resolve contribute nothing to any balance.
// The transaction feed still carries such lines (see BuildFeed); the asymmetry
// is a preserved contract, not a bug.
//
// Decimal addition is exact, so accumulation is order-independent: any
// permutation of the same lines yields identical balances.
func AccumulateBalances(lines []domain.JournalEntryLine, reg *AccountRegistry) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, line := range lines {
		accountType, ok := reg.TypeOf(line.AccountID)
		if !ok {
			continue
		}
		var delta decimal.Decimal
		switch accountType {
		case domain.Asset, domain.Expense:
			delta = line.DebitAmount.Sub(line.CreditAmount)
		default:
			delta = line.CreditAmount.Sub(line.DebitAmount)
		}
		balances[line.AccountID] = balances[line.AccountID].Add(delta)
	}
	return balances
}

// TotalAssetBalance sums balances over accounts whose normalized type is ASSET.
// Expense balances are computed with the same sign rule but are excluded from
// this total by business policy; do not "fix" that.
func TotalAssetBalance(balances map[string]decimal.Decimal, reg *AccountRegistry) decimal.Decimal {
	total := decimal.Zero
	for accountID, balance := range balances {
		if accountType, ok := reg.TypeOf(accountID); ok && accountType == domain.Asset {
			total = total.Add(balance)
		}
	}
	return total
}

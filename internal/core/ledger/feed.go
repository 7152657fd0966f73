package ledger

import (
	"sort"

	"github.com/agencybooks/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// fallbackDescription labels lines where neither the line nor its entry carries
// a description.
const fallbackDescription = "Transaction"

// BuildFeed maps posted entries and their lines into display-ready transactions.
//
// The running balance is accumulated strictly in fetch order: entries as
// delivered by the source query (entry_date descending), lines within an entry
// in their fetch order. The finished list is then re-sorted for display by date
// descending, but the balance attached to each transaction keeps its
// accumulation-order value and is NOT recomputed after the sort. Recomputing it
// would change displayed figures users already reconcile against.
func BuildFeed(entries []domain.JournalEntry, lines []domain.JournalEntryLine, reg *AccountRegistry) []domain.Transaction {
	linesByEntry := make(map[string][]domain.JournalEntryLine, len(entries))
	for _, line := range lines {
		linesByEntry[line.JournalEntryID] = append(linesByEntry[line.JournalEntryID], line)
	}

	feed := make([]domain.Transaction, 0, len(lines))
	running := decimal.Zero
	for _, entry := range entries {
		if entry.Status != domain.Posted {
			continue
		}
		for _, line := range linesByEntry[entry.EntryID] {
			if !line.CreditAmount.IsPositive() && !line.DebitAmount.IsPositive() {
				continue
			}
			// Credit wins when both sides are nonzero. Malformed, but the rule
			// must stay deterministic.
			isCredit := line.CreditAmount.IsPositive()
			amount := line.DebitAmount
			txnType := domain.Debit
			if isCredit {
				amount = line.CreditAmount
				txnType = domain.Credit
				running = running.Add(amount)
			} else {
				running = running.Sub(amount)
			}
			feed = append(feed, domain.Transaction{
				LineID:      line.LineID,
				AccountID:   line.AccountID,
				Date:        entry.EntryDate,
				Description: descriptionFor(line, entry),
				Category:    categoryFor(line.AccountID, reg),
				Type:        txnType,
				Amount:      amount,
				Balance:     running,
				Reference:   referenceFor(entry),
			})
		}
	}

	sortForDisplay(feed)
	return feed
}

func descriptionFor(line domain.JournalEntryLine, entry domain.JournalEntry) string {
	if line.Description != "" {
		return line.Description
	}
	if entry.Description != "" {
		return entry.Description
	}
	return fallbackDescription
}

func referenceFor(entry domain.JournalEntry) string {
	if entry.Reference != "" {
		return entry.Reference
	}
	if entry.EntryNumber != "" {
		return entry.EntryNumber
	}
	id := entry.EntryID
	if len(id) > 8 {
		id = id[:8]
	}
	return "JE-" + id
}

// categoryFor classifies against the raw account_type text. Unresolved account
// ids still appear in the feed and default to Other.
func categoryFor(accountID string, reg *AccountRegistry) domain.Category {
	acc, ok := reg.Resolve(accountID)
	if !ok {
		return domain.CategoryOther
	}
	return domain.ClassifyCategory(acc.RawType)
}

// sortForDisplay orders the feed by date descending. Transactions without a
// parseable date sort before dated ones; ties keep accumulation order.
func sortForDisplay(feed []domain.Transaction) {
	sort.SliceStable(feed, func(i, j int) bool {
		di, errI := domain.ParseDate(feed[i].Date)
		dj, errJ := domain.ParseDate(feed[j].Date)
		switch {
		case errI != nil && errJ != nil:
			return false
		case errI != nil:
			return true
		case errJ != nil:
			return false
		default:
			return di.After(dj)
		}
	})
}

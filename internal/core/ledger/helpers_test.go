package ledger_test

import (
	"github.com/agencybooks/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

func testAccount(id, name, rawType string) domain.Account {
	return domain.Account{
		AccountID:   id,
		Name:        name,
		RawType:     rawType,
		AccountType: domain.ParseAccountType(rawType),
		IsActive:    true,
	}
}

func postedEntry(id, date string) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:   id,
		EntryDate: date,
		Status:    domain.Posted,
	}
}

func entryLine(id, entryID, accountID, debit, credit string) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineID:         id,
		JournalEntryID: entryID,
		AccountID:      accountID,
		DebitAmount:    decimal.RequireFromString(debit),
		CreditAmount:   decimal.RequireFromString(credit),
	}
}

// permutations returns every ordering of the given lines. Factorial, so keep
// inputs small.
func permutations(lines []domain.JournalEntryLine) [][]domain.JournalEntryLine {
	if len(lines) <= 1 {
		return [][]domain.JournalEntryLine{append([]domain.JournalEntryLine(nil), lines...)}
	}
	var result [][]domain.JournalEntryLine
	for i := range lines {
		rest := make([]domain.JournalEntryLine, 0, len(lines)-1)
		rest = append(rest, lines[:i]...)
		rest = append(rest, lines[i+1:]...)
		for _, perm := range permutations(rest) {
			result = append(result, append([]domain.JournalEntryLine{lines[i]}, perm...))
		}
	}
	return result
}

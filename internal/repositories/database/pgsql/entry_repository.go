package pgsql

import (
	"context"
	"fmt"

	"github.com/agencybooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/agencybooks/ledger_engine/internal/core/ports/repositories"
)

type journalEntryRepository struct {
	BaseRepository
}

// NewJournalEntryRepository creates a read-only repository over the journal
// store owned by the external posting subsystem.
func NewJournalEntryRepository(db Querier) portsrepo.JournalEntryReader {
	return &journalEntryRepository{BaseRepository: BaseRepository{DB: db}}
}

// ListPostedEntries returns the most recent posted entries, newest first.
// entry_date is ISO text; Postgres sorts NULLs first under DESC, which matches
// the feed's missing-date-first display rule.
func (r *journalEntryRepository) ListPostedEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	query := `
		SELECT id, entry_date, status, description, reference, entry_number
		FROM journal_entries
		WHERE status = 'posted'
		ORDER BY entry_date DESC
		LIMIT $1;
	`
	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posted journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var e domain.JournalEntry
		var entryDate, description, reference, entryNumber *string
		if err := rows.Scan(&e.EntryID, &entryDate, &e.Status, &description, &reference, &entryNumber); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		e.EntryDate = deref(entryDate)
		e.Description = deref(description)
		e.Reference = deref(reference)
		e.EntryNumber = deref(entryNumber)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entry rows: %w", err)
	}
	return entries, nil
}

// FindLinesByEntryIDs returns the lines for the given entries. Row order is
// made stable (entry id, then line id) because the feed accumulates its
// running balance in fetch order.
func (r *journalEntryRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) ([]domain.JournalEntryLine, error) {
	if len(entryIDs) == 0 {
		return []domain.JournalEntryLine{}, nil
	}

	query := `
		SELECT id, journal_entry_id, account_id, debit_amount, credit_amount, description
		FROM journal_entry_lines
		WHERE journal_entry_id = ANY($1)
		ORDER BY journal_entry_id, id;
	`
	rows, err := r.DB.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entry lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.JournalEntryLine
	for rows.Next() {
		var l domain.JournalEntryLine
		var description *string
		if err := rows.Scan(&l.LineID, &l.JournalEntryID, &l.AccountID, &l.DebitAmount, &l.CreditAmount, &description); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry line row: %w", err)
		}
		l.Description = deref(description)
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entry line rows: %w", err)
	}
	return lines, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

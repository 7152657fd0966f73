package repositories

import (
	"context"

	"github.com/agencybooks/ledger_engine/internal/core/domain"
)

// JournalEntryReader defines the read operations the engine needs from the
// journal store. The store is owned by an external posting subsystem; the
// engine only ever reads point-in-time snapshots.
type JournalEntryReader interface {
	// ListPostedEntries returns entries with status 'posted', ordered by
	// entry_date descending, capped at limit rows. The cap bounds the
	// reconstruction window; results over a capped window are a documented
	// approximation, not an error.
	ListPostedEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error)

	// FindLinesByEntryIDs returns the lines belonging to the given entries,
	// in stable fetch order. Fetch order matters: the feed's running balance
	// is accumulated in it.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) ([]domain.JournalEntryLine, error)
}

// AccountReader defines the read operations for the chart of accounts.
type AccountReader interface {
	// ListActiveAccounts returns accounts with is_active = true, scoped to an
	// agency when agencyID is non-nil. Callers must pass nil when the store
	// does not support agency scoping (see SupportsAgencyScope).
	ListActiveAccounts(ctx context.Context, agencyID *string) ([]domain.Account, error)

	// SupportsAgencyScope probes whether the accounts relation carries an
	// agency column. A store without the column is a recognized, non-fatal
	// condition reported as (false, nil); any other probe failure is an error.
	SupportsAgencyScope(ctx context.Context) (bool, error)
}

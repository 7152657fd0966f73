package services

import (
	"context"

	"github.com/agencybooks/ledger_engine/internal/core/domain"
)

// LedgerReaderSvc exposes the reconstructed ledger views to the transport
// layer. Every call recomputes from a fresh snapshot; nothing is cached.
type LedgerReaderSvc interface {
	// GetLedgerView fetches a snapshot and reconstructs balances, the
	// transaction feed and the summary. agencyID scopes the account fetch
	// when non-nil and the store supports it; an unsupported store degrades
	// transparently to an unscoped fetch.
	GetLedgerView(ctx context.Context, agencyID *string) (*domain.LedgerView, error)

	// ExportCSV renders the current transaction feed as a CSV download and
	// returns the filename to serve it under.
	ExportCSV(ctx context.Context, agencyID *string) (filename string, data []byte, err error)
}

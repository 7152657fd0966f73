package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/agencybooks/ledger_engine/internal/apperrors"
	"github.com/agencybooks/ledger_engine/internal/core/domain"
	"github.com/agencybooks/ledger_engine/internal/core/ledger"
	portsrepo "github.com/agencybooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/agencybooks/ledger_engine/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// defaultEntryFetchLimit caps the reconstruction window when no limit is
// configured. The computed view is an approximation over that window.
const defaultEntryFetchLimit = 100

// ledgerService reconstructs ledger views from the external journal store.
type ledgerService struct {
	BaseService
	entryRepo   portsrepo.JournalEntryReader
	accountRepo portsrepo.AccountReader
	entryLimit  int
	nowFn       func() time.Time

	// Agency scoping capability, probed once per process. Only successful
	// probes are cached; a failed probe is retried on the next request.
	probeMu sync.Mutex
	probed  bool
	scoped  bool
}

// LedgerServiceOption is a functional option for configuring the service.
type LedgerServiceOption func(*ledgerService)

// WithEntryFetchLimit overrides the posted-entry row cap.
func WithEntryFetchLimit(limit int) LedgerServiceOption {
	return func(s *ledgerService) {
		if limit > 0 {
			s.entryLimit = limit
		}
	}
}

// WithClock overrides the wall clock, for tests.
func WithClock(nowFn func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.nowFn = nowFn
	}
}

// NewLedgerService creates the ledger reconstruction service.
func NewLedgerService(entryRepo portsrepo.JournalEntryReader, accountRepo portsrepo.AccountReader, options ...LedgerServiceOption) portssvc.LedgerReaderSvc {
	svc := &ledgerService{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
		entryLimit:  defaultEntryFetchLimit,
		nowFn:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerReaderSvc = (*ledgerService)(nil)

// GetLedgerView fetches a point-in-time snapshot and runs the reconstruction
// pass over it. Accounts are fetched in parallel with entries+lines; the
// computation itself is sequential and pure.
func (s *ledgerService) GetLedgerView(ctx context.Context, agencyID *string) (*domain.LedgerView, error) {
	if agencyID != nil {
		scoped, err := s.agencyScopeSupported(ctx)
		if err != nil {
			s.LogError(ctx, err, "Agency scoping probe failed")
			return nil, fmt.Errorf("%w: %v", apperrors.ErrAccountFetch, err)
		}
		if !scoped {
			// Transparent degradation: the store predates agency scoping.
			s.LogWarn(ctx, "Accounts store lacks agency scoping, fetching unscoped",
				slog.String("agency_id", *agencyID))
			agencyID = nil
		}
	}

	var (
		accounts []domain.Account
		entries  []domain.JournalEntry
		lines    []domain.JournalEntryLine
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		accs, err := s.accountRepo.ListActiveAccounts(gctx, agencyID)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrAccountFetch, err)
		}
		accounts = accs
		return nil
	})
	g.Go(func() error {
		ents, err := s.entryRepo.ListPostedEntries(gctx, s.entryLimit)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrEntryFetch, err)
		}
		entryIDs := make([]string, 0, len(ents))
		for _, e := range ents {
			entryIDs = append(entryIDs, e.EntryID)
		}
		lns, err := s.entryRepo.FindLinesByEntryIDs(gctx, entryIDs)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrLineFetch, err)
		}
		entries = ents
		lines = lns
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Ledger snapshot fetch failed")
		return nil, err
	}

	result := ledger.Compute(entries, lines, accounts, s.nowFn())

	// Balance rows follow the account fetch order (name, id), which keeps the
	// output deterministic across runs over an unchanged snapshot.
	balances := make([]domain.AccountBalance, 0, len(accounts))
	for _, acc := range accounts {
		balances = append(balances, domain.AccountBalance{
			AccountID:   acc.AccountID,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			Balance:     result.Balances[acc.AccountID],
		})
	}

	s.LogInfo(ctx, "Ledger view reconstructed",
		slog.Int("entries", len(entries)),
		slog.Int("lines", len(lines)),
		slog.Int("accounts", len(accounts)),
		slog.Int("transactions", len(result.Feed)))

	return &domain.LedgerView{
		Balances:     balances,
		Transactions: result.Feed,
		Summary:      result.Summary,
	}, nil
}

// ExportCSV reconstructs the feed and renders it for download.
func (s *ledgerService) ExportCSV(ctx context.Context, agencyID *string) (string, []byte, error) {
	view, err := s.GetLedgerView(ctx, agencyID)
	if err != nil {
		return "", nil, err
	}
	filename := fmt.Sprintf("ledger_export_%s.csv", s.nowFn().Format(domain.DateLayout))
	return filename, ledger.RenderCSV(view.Transactions), nil
}

// agencyScopeSupported runs the capability probe at most once per process,
// ahead of the main computation.
func (s *ledgerService) agencyScopeSupported(ctx context.Context) (bool, error) {
	s.probeMu.Lock()
	defer s.probeMu.Unlock()
	if s.probed {
		return s.scoped, nil
	}
	scoped, err := s.accountRepo.SupportsAgencyScope(ctx)
	if err != nil {
		return false, err
	}
	s.probed = true
	s.scoped = scoped
	return scoped, nil
}

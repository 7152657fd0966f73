package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agencybooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/agencybooks/ledger_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUndefinedColumn is the PostgreSQL error code for a missing column
// (undefined_column). The agency probe treats it as "scoping unsupported".
const pgUndefinedColumn = "42703"

type accountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a read-only repository over the chart of
// accounts.
func NewAccountRepository(db Querier) portsrepo.AccountReader {
	return &accountRepository{BaseRepository: BaseRepository{DB: db}}
}

// ListActiveAccounts returns active accounts, scoped to an agency when
// agencyID is non-nil. The unscoped query never references agency_id, so it
// works against stores whose schema predates agency scoping.
func (r *accountRepository) ListActiveAccounts(ctx context.Context, agencyID *string) ([]domain.Account, error) {
	query := `
		SELECT id, name, account_type, is_active
		FROM accounts
		WHERE is_active = TRUE
		ORDER BY name, id;
	`
	args := []interface{}{}
	if agencyID != nil {
		query = `
		SELECT id, name, account_type, is_active, agency_id
		FROM accounts
		WHERE is_active = TRUE AND agency_id = $1
		ORDER BY name, id;
	`
		args = append(args, *agencyID)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		var rawType string
		dest := []interface{}{&acc.AccountID, &acc.Name, &rawType, &acc.IsActive}
		var scopedAgency *string
		if agencyID != nil {
			dest = append(dest, &scopedAgency)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		acc.RawType = rawType
		acc.AccountType = domain.ParseAccountType(rawType)
		acc.AgencyID = deref(scopedAgency)
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return accounts, nil
}

// SupportsAgencyScope probes whether accounts.agency_id exists. An
// undefined_column error means the store is unscoped, which degrades the fetch
// rather than failing it; every other error is fatal.
func (r *accountRepository) SupportsAgencyScope(ctx context.Context) (bool, error) {
	var agencyID *string
	err := r.DB.QueryRow(ctx, `SELECT agency_id FROM accounts LIMIT 1;`).Scan(&agencyID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		// Column exists, table is just empty.
		return true, nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedColumn {
		return false, nil
	}
	return false, fmt.Errorf("failed to probe agency scoping support: %w", err)
}

package ledger

import "github.com/agencybooks/ledger_engine/internal/core/domain"

// AccountRegistry indexes active chart-of-accounts records by id. Lines may
// reference ids that are not in the registry (deleted or inactive accounts);
// that is a valid outcome the callers branch on, not a failure.
type AccountRegistry struct {
	byID map[string]domain.Account
}

// NewAccountRegistry builds the id index. Inactive accounts are dropped even if
// the caller passed them, so the registry always reflects the active chart.
func NewAccountRegistry(accounts []domain.Account) *AccountRegistry {
	byID := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		if !acc.IsActive {
			continue
		}
		byID[acc.AccountID] = acc
	}
	return &AccountRegistry{byID: byID}
}

// Resolve returns the account for an id, if registered.
func (r *AccountRegistry) Resolve(accountID string) (domain.Account, bool) {
	acc, ok := r.byID[accountID]
	return acc, ok
}

// TypeOf returns the normalized account type for an id. The second return is
// false for unresolved ids; those callers must not default to any sign rule.
func (r *AccountRegistry) TypeOf(accountID string) (domain.AccountType, bool) {
	acc, ok := r.byID[accountID]
	if !ok {
		return domain.Unknown, false
	}
	return acc.AccountType, true
}

// Len reports how many active accounts are registered.
func (r *AccountRegistry) Len() int {
	return len(r.byID)
}

package domain

import "strings"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
	Unknown   AccountType = "UNKNOWN"
)

// ParseAccountType normalizes the free-text account_type column into the closed
// enum. Matching is case-insensitive and keyword based so variants such as
// "Fixed Assets" or "Other Income" still classify; anything unrecognized maps to
// Unknown, which balance accumulation treats like the credit-normal types.
func ParseAccountType(raw string) AccountType {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(t, "asset"):
		return Asset
	case strings.Contains(t, "liabilit"):
		return Liability
	case strings.Contains(t, "equity"):
		return Equity
	case strings.Contains(t, "revenue"), strings.Contains(t, "income"):
		return Revenue
	case strings.Contains(t, "expense"):
		return Expense
	default:
		return Unknown
	}
}

// Account represents a chart-of-accounts record as delivered by the posting
// subsystem. RawType keeps the stored account_type text because transaction
// categorization matches keywords against it, not against the normalized enum.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (UUID)
	Name        string      `json:"name"`        // User-defined name
	RawType     string      `json:"rawType"`     // account_type as stored (free text)
	AccountType AccountType `json:"accountType"` // Normalized from RawType
	IsActive    bool        `json:"isActive"`    // Soft delete or status flag
	AgencyID    string      `json:"agencyID"`    // Empty when the store is not agency scoped
}

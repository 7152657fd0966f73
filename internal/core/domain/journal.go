package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry in the posting subsystem.
type EntryStatus string

// Posted is the only status the reconstruction engine consumes; drafts never
// reach it because the entries query filters on status.
const Posted EntryStatus = "posted"

// DateLayout is the canonical ISO-8601 date layout entry dates are delivered in.
const DateLayout = "2006-01-02"

// JournalEntry represents a finalized double-entry journal record. Dates arrive
// as text from the posting subsystem and are not guaranteed to parse.
type JournalEntry struct {
	EntryID     string      `json:"entryID"`     // Primary Key (UUID)
	EntryDate   string      `json:"entryDate"`   // ISO date text; may be empty or malformed
	Status      EntryStatus `json:"status"`      // Only "posted" is consumed
	Description string      `json:"description"` // Nullable user description
	Reference   string      `json:"reference"`   // Nullable external reference
	EntryNumber string      `json:"entryNumber"` // Nullable sequential number
	AgencyID    string      `json:"agencyID"`    // Empty when the store is not agency scoped
}

// JournalEntryLine is a single debit/credit line owned by exactly one entry.
// Well-formed data has at most one of debit/credit nonzero per line; the engine
// does not enforce this, it reads whichever side is nonzero.
type JournalEntryLine struct {
	LineID         string          `json:"lineID"`         // Primary Key (UUID)
	JournalEntryID string          `json:"journalEntryID"` // FK -> JournalEntry.EntryID
	AccountID      string          `json:"accountID"`      // FK -> Account.AccountID
	DebitAmount    decimal.Decimal `json:"debitAmount"`    // >= 0
	CreditAmount   decimal.Decimal `json:"creditAmount"`   // >= 0
	Description    string          `json:"description"`    // Nullable line description
}

// ParseDate parses an entry or transaction date. A bare ISO date is the common
// case; a full RFC 3339 timestamp is tolerated. An empty string is not a date.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

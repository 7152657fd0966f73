package domain

import "github.com/shopspring/decimal"

// AccountBalance is one row of the per-account balances view.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerSummary carries the headline figures of a reconstruction pass.
// TotalBalance is a lifetime asset position; the monthly figures cover the
// current calendar month only. The two are independent and never merged.
type LedgerSummary struct {
	TotalBalance    decimal.Decimal `json:"totalBalance"`    // Sum of asset-type balances only
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`   // Current-month credit amounts
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"` // Current-month debit amounts
	NetProfit       decimal.Decimal `json:"netProfit"`       // MonthlyIncome - MonthlyExpenses
}

// LedgerView is the full output of one reconstruction pass, recomputed on
// demand from a point-in-time snapshot. Nothing here is persisted.
type LedgerView struct {
	Balances     []AccountBalance `json:"balances"`
	Transactions []Transaction    `json:"transactions"`
	Summary      LedgerSummary    `json:"summary"`
}

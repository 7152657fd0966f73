package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a feed transaction is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Category is the display classification of a feed transaction.
type Category string

const (
	CategoryRevenue           Category = "Revenue"
	CategoryOperatingExpenses Category = "Operating Expenses"
	CategoryPayroll           Category = "Payroll"
	CategoryOther             Category = "Other"
)

// ClassifyCategory maps the raw account_type text to a display category via
// case-insensitive substring match. Precedence is fixed and load-bearing for
// existing categorized data: revenue/income, then expense, then payroll/salary,
// otherwise Other. A "payroll expenses" account therefore lands in Operating
// Expenses, not Payroll.
func ClassifyCategory(rawType string) Category {
	t := strings.ToLower(rawType)
	switch {
	case strings.Contains(t, "revenue"), strings.Contains(t, "income"):
		return CategoryRevenue
	case strings.Contains(t, "expense"):
		return CategoryOperatingExpenses
	case strings.Contains(t, "payroll"), strings.Contains(t, "salary"):
		return CategoryPayroll
	default:
		return CategoryOther
	}
}

// Transaction is the display-ready projection of one journal entry line.
// Balance is the running balance attached while the feed was accumulated in
// fetch order; it is deliberately not recomputed after the display sort.
type Transaction struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Date        string          `json:"date"` // Entry date text, as delivered
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"` // Accumulation-order running balance
	Reference   string          `json:"reference"`
}

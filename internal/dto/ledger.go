package dto

import (
	"github.com/agencybooks/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSummaryResponse is the response for the ledger summary endpoint.
type LedgerSummaryResponse struct {
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	NetProfit       decimal.Decimal `json:"netProfit"`
}

// TransactionResponse is one row of the transaction feed endpoint.
type TransactionResponse struct {
	LineID      string          `json:"lineID"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Reference   string          `json:"reference"`
}

// AccountBalanceResponse is one row of the balances endpoint.
type AccountBalanceResponse struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
}

// ToLedgerSummaryResponse maps the domain summary to its response shape.
func ToLedgerSummaryResponse(summary domain.LedgerSummary) LedgerSummaryResponse {
	return LedgerSummaryResponse{
		TotalBalance:    summary.TotalBalance,
		MonthlyIncome:   summary.MonthlyIncome,
		MonthlyExpenses: summary.MonthlyExpenses,
		NetProfit:       summary.NetProfit,
	}
}

// ToTransactionResponses maps the feed to its response shape, preserving the
// display order and the accumulation-order balances.
func ToTransactionResponses(feed []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(feed))
	for i, txn := range feed {
		responses[i] = TransactionResponse{
			LineID:      txn.LineID,
			Date:        txn.Date,
			Description: txn.Description,
			Category:    string(txn.Category),
			Type:        string(txn.Type),
			Amount:      txn.Amount,
			Balance:     txn.Balance,
			Reference:   txn.Reference,
		}
	}
	return responses
}

// ToAccountBalanceResponses maps the balances view to its response shape.
func ToAccountBalanceResponses(balances []domain.AccountBalance) []AccountBalanceResponse {
	responses := make([]AccountBalanceResponse, len(balances))
	for i, bal := range balances {
		responses[i] = AccountBalanceResponse{
			AccountID:   bal.AccountID,
			AccountName: bal.AccountName,
			AccountType: string(bal.AccountType),
			Balance:     bal.Balance,
		}
	}
	return responses
}

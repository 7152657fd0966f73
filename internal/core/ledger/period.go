package ledger

import (
	"time"

	"github.com/agencybooks/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummarizePeriod computes income, expenses and net for the calendar month of
// now. The window is evaluated at call time, not at snapshot-fetch time, so a
// feed computed just before midnight on the 31st summarizes differently a
// minute later. Transactions without a parseable date fall outside any month.
func SummarizePeriod(feed []domain.Transaction, now time.Time) (income, expenses, net decimal.Decimal) {
	income = decimal.Zero
	expenses = decimal.Zero
	for _, txn := range feed {
		d, err := domain.ParseDate(txn.Date)
		if err != nil {
			continue
		}
		if d.Year() != now.Year() || d.Month() != now.Month() {
			continue
		}
		if txn.Type == domain.Credit {
			income = income.Add(txn.Amount)
		} else {
			expenses = expenses.Add(txn.Amount)
		}
	}
	return income, expenses, income.Sub(expenses)
}

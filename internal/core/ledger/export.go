package ledger

import (
	"strings"

	"github.com/agencybooks/ledger_engine/internal/core/domain"
)

var csvHeader = []string{"Date", "Reference", "Description", "Category", "Type", "Amount", "Balance"}

// RenderCSV serializes the transaction feed for download. Every data field is
// double-quoted (embedded quotes doubled), amounts and balances carry two
// decimal places, and Type is upper-cased. A row whose date fails to parse is
// rendered with "Invalid Date" instead of aborting the whole export.
func RenderCSV(feed []domain.Transaction) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteByte('\n')

	for _, txn := range feed {
		date := "Invalid Date"
		if d, err := domain.ParseDate(txn.Date); err == nil {
			date = d.Format(domain.DateLayout)
		}
		fields := []string{
			date,
			txn.Reference,
			txn.Description,
			string(txn.Category),
			strings.ToUpper(string(txn.Type)),
			txn.Amount.StringFixed(2),
			txn.Balance.StringFixed(2),
		}
		for i, field := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

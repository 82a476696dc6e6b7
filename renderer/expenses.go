package renderer

import (
	"fmt"

	"github.com/fornance/fornance"
)

// ExpensesMarkdown renders the expense collection with the actual spend each
// expense represents in the balance currency, followed by the total.
func ExpensesMarkdown(st fornance.State) string {
	currency := st.CashBalance.Currency()

	r := newRenderer()
	r.Printf("# Expenses\n\n")
	if len(st.Expenses) == 0 {
		r.Printf("No expenses recorded.\n")
		return r.String()
	}

	r.Header("Date", "Title", "Category", "Amount", "Spend")
	total := fornance.M(0, currency)
	for _, e := range st.Expenses {
		spend := e.Spend(currency)
		total = total.Add(spend)
		amount := fmt.Sprintf("%s %s", currency, e.Amount)
		if e.IsPercentage {
			amount = fmt.Sprintf("%s%% of %s %s", e.Amount, currency, e.BaseAmount)
		}
		r.Row(e.Date.Format("2006-01-02"), e.Title, e.Category, amount, spend.String())
	}
	r.Printf("\nTotal spend: **%s**\n", total)
	return r.String()
}

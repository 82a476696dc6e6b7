package renderer

import (
	"github.com/fornance/fornance"
)

// SummaryMarkdown renders an at-a-glance overview of the whole state: cash
// balance, expense count and total spend, and the active plan allocation.
func SummaryMarkdown(st fornance.State) string {
	currency := st.CashBalance.Currency()

	r := newRenderer()
	r.Printf("# Fornance\n\n")
	r.Printf("Cash balance: **%s**\n\n", st.CashBalance)

	total := fornance.M(0, currency)
	for _, e := range st.Expenses {
		total = total.Add(e.Spend(currency))
	}
	r.Printf("Expenses: %d, total spend **%s**\n\n", len(st.Expenses), total)

	if plan := st.ActivePlan(); plan != nil {
		r.Printf("Active plan: %s (%s)\n\n", plan.Name, plan.TotalAmount)
		r.Header("Category", "Share", "Amount")
		for _, c := range plan.Categories {
			r.Row(c.Name, c.Percentage.String()+"%", c.Amount.String())
		}
	} else {
		r.Printf("No active budget plan.\n")
	}
	return r.String()
}

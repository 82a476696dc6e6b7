package renderer

import (
	"strconv"

	"github.com/fornance/fornance"
)

// PlanMarkdown renders a single budget plan with its category allocation.
func PlanMarkdown(plan fornance.BudgetPlan, active bool) string {
	r := newRenderer()
	title := plan.Name
	if active {
		title += " (active)"
	}
	r.Printf("# Budget Plan: %s\n\n", title)
	r.Printf("Total: **%s**, updated %s\n\n", plan.TotalAmount, plan.UpdatedAt.Format("2006-01-02"))
	r.Header("Category", "Share", "Amount")
	for _, c := range plan.Categories {
		r.Row(c.Name, c.Percentage.String()+"%", c.Amount.String())
	}
	return r.String()
}

// PlansMarkdown renders the budget plan collection.
func PlansMarkdown(st fornance.State) string {
	r := newRenderer()
	r.Printf("# Budget Plans\n\n")
	if len(st.BudgetPlans) == 0 {
		r.Printf("No budget plans.\n")
		return r.String()
	}
	r.Header("Id", "Name", "Total", "Categories", "Active")
	for _, p := range st.BudgetPlans {
		active := ""
		if p.ID == st.ActivePlanID {
			active = "yes"
		}
		r.Row(p.ID, p.Name, p.TotalAmount.String(), strconv.Itoa(len(p.Categories)), active)
	}
	return r.String()
}

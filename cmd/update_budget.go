package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fornance/fornance"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type updateBudgetCmd struct {
	id    string
	name  string
	total string
}

func (*updateBudgetCmd) Name() string     { return "update-budget" }
func (*updateBudgetCmd) Synopsis() string { return "update fields of a budget plan" }
func (*updateBudgetCmd) Usage() string {
	return `fnc update-budget -id <id> [-n <name>] [-total <amount>] [<category>...]

  Updates the given fields of a budget plan, leaving the others unchanged.
  Passing categories (name:percentage[:color]) replaces the whole category
  list. Category amounts are recomputed when the total or the categories
  change.
`
}

func (p *updateBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the plan to update.")
	f.StringVar(&p.name, "n", "", "New name of the plan.")
	f.StringVar(&p.total, "total", "", "New total amount to allocate.")
}

func (p *updateBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	var update fornance.PlanUpdate
	if p.name != "" {
		update.Name = &p.name
	}
	if p.total != "" {
		total, err := decimal.NewFromString(p.total)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing total %q: %v\n", p.total, err)
			return subcommands.ExitUsageError
		}
		update.TotalAmount = &total
	}
	if f.NArg() > 0 {
		inputs, err := parseCategories(f.Args())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		categories := make([]fornance.BudgetCategory, len(inputs))
		for i, in := range inputs {
			categories[i] = fornance.BudgetCategory{Name: in.Name, Percentage: in.Percentage, Color: in.Color}
		}
		update.Categories = categories
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.UpdatePlan(p.id, update); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

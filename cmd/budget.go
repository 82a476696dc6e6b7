package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fornance/fornance/renderer"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	all bool
	id  string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show the active budget plan, or list all plans" }
func (*budgetCmd) Usage() string {
	return `fnc budget [-all | -id <id>]

  Shows the active budget plan with its category allocation. With -all,
  lists every plan instead; with -id, shows that specific plan.
`
}

func (p *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.all, "all", false, "List all budget plans.")
	f.StringVar(&p.id, "id", "", "Show the plan with this id.")
}

func (p *budgetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	st := store.State()

	if p.all {
		printMarkdown(renderer.PlansMarkdown(st))
		return subcommands.ExitSuccess
	}

	if p.id != "" {
		for _, plan := range st.BudgetPlans {
			if plan.ID == p.id {
				printMarkdown(renderer.PlanMarkdown(plan, plan.ID == st.ActivePlanID))
				return subcommands.ExitSuccess
			}
		}
		fmt.Fprintf(os.Stderr, "Error: no budget plan with id %q.\n", p.id)
		return subcommands.ExitFailure
	}

	plan := st.ActivePlan()
	if plan == nil {
		fmt.Println("No active budget plan. Create one with 'fnc create-budget'.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.PlanMarkdown(*plan, true))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type useBudgetCmd struct {
	clear bool
}

func (*useBudgetCmd) Name() string     { return "use-budget" }
func (*useBudgetCmd) Synopsis() string { return "select the active budget plan" }
func (*useBudgetCmd) Usage() string {
	return `fnc use-budget <id> | fnc use-budget -clear

  Makes the plan with the given id the active one. An unknown id clears the
  active reference.
`
}

func (p *useBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.clear, "clear", false, "Clear the active plan reference.")
}

func (p *useBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := ""
	if !p.clear {
		if f.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: use-budget expects exactly one plan id, or -clear.")
			return subcommands.ExitUsageError
		}
		id = f.Arg(0)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SetActivePlan(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if plan := store.State().ActivePlan(); plan != nil {
		fmt.Printf("Active plan is now %s\n", plan.Name)
	} else {
		fmt.Println("No active plan.")
	}
	return subcommands.ExitSuccess
}

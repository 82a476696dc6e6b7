package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteBudgetCmd struct{}

func (*deleteBudgetCmd) Name() string     { return "delete-budget" }
func (*deleteBudgetCmd) Synopsis() string { return "delete a budget plan by its id" }
func (*deleteBudgetCmd) Usage() string {
	return `fnc delete-budget <id>

  Deletes the budget plan with the given id. If it was the active plan, the
  active reference is cleared.
`
}

func (*deleteBudgetCmd) SetFlags(_ *flag.FlagSet) {}

func (p *deleteBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: delete-budget expects exactly one plan id.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.DeletePlan(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

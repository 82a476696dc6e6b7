package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeExpenseCmd struct{}

func (*removeExpenseCmd) Name() string     { return "remove-expense" }
func (*removeExpenseCmd) Synopsis() string { return "remove an expense by its id" }
func (*removeExpenseCmd) Usage() string {
	return `fnc remove-expense <id>

  Removes the expense with the given id. Removing an unknown id does nothing.
`
}

func (*removeExpenseCmd) SetFlags(_ *flag.FlagSet) {}

func (p *removeExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: remove-expense expects exactly one expense id.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.RemoveExpense(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearExpensesCmd struct{}

func (*clearExpensesCmd) Name() string     { return "clear-expenses" }
func (*clearExpensesCmd) Synopsis() string { return "remove all expenses" }
func (*clearExpensesCmd) Usage() string {
	return `fnc clear-expenses

  Empties the expense collection. A single entry is recorded in the activity
  history.
`
}

func (*clearExpensesCmd) SetFlags(_ *flag.FlagSet) {}

func (p *clearExpensesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.ClearExpenses(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("All expenses cleared.")
	return subcommands.ExitSuccess
}

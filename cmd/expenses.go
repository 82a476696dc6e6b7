package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fornance/fornance/renderer"
	"github.com/google/subcommands"
)

type expensesCmd struct{}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list all expenses" }
func (*expensesCmd) Usage() string {
	return `fnc expenses

  Lists all expenses, newest first, with the actual spend each one
  represents in the balance currency.
`
}

func (*expensesCmd) SetFlags(_ *flag.FlagSet) {}

func (p *expensesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ExpensesMarkdown(store.State()))
	return subcommands.ExitSuccess
}

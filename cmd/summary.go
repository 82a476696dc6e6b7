package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fornance/fornance/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show an overview of balance, expenses and budget" }
func (*summaryCmd) Usage() string {
	return `fnc summary

  Shows the cash balance, the total spend of all expenses, and the active
  budget plan allocation.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (p *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(store.State()))
	return subcommands.ExitSuccess
}
